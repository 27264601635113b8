package adminclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal(data, &values))
	assert.Equal(t, "abc", values[TokenKey])

	token, err = NewFileTokenStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing an absent file is fine
	assert.NoError(t, store.Clear())
}

func TestFileTokenStore_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))
	store := NewFileTokenStore(path)

	require.NoError(t, store.Save("abc"))
	require.NoError(t, store.Clear())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestFileTokenStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err := NewFileTokenStore(path).Load()
	assert.ErrorIs(t, err, ErrCorruptTokenFile)

	_, err = NewSession("http://localhost", nil, NewFileTokenStore(path))
	assert.ErrorIs(t, err, ErrCorruptTokenFile)
}

func TestFileTokenStore_ClearRemovesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adminToken":`), 0o600))
	store := NewFileTokenStore(path)

	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	session, err := NewSession("http://localhost", nil, store)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestNewSession_RestoresToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileTokenStore(path).Save("persisted"))

	session, err := NewSession("http://localhost/api/", nil, NewFileTokenStore(path))
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "persisted", session.Token())
	assert.Equal(t, "http://localhost/api", session.BaseURL())
}
