package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 24)

	token, expiresAt, err := tm.GenerateToken("admin-1", "owner", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "owner", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.TokenID())
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 1)

	first, _, err := tm.GenerateToken("admin-1", "owner", "admin")
	require.NoError(t, err)
	second, _, err := tm.GenerateToken("admin-1", "owner", "admin")
	require.NoError(t, err)

	a, err := tm.ValidateToken(first)
	require.NoError(t, err)
	b, err := tm.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.TokenID(), b.TokenID())
}

func TestValidateToken_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 1)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := tm.GenerateToken("admin-1", "owner", "admin")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "portfolio-api", 1)
	verifier := NewTokenManager("secret-b", "portfolio-api", 1)

	token, _, err := issuer.GenerateToken("admin-1", "owner", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 1)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc", "abc"))
	assert.False(t, TimingSafeCompare("abc", "abd"))
	assert.False(t, TimingSafeCompare("abc", ""))
}
