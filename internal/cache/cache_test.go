package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCache_LoadCachesUntilInvalidated(t *testing.T) {
	pc := NewPublicCache(60)
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Load(context.Background(), pc, PublicSkillsKey, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, pc.Len())

	pc.Invalidate()
	assert.Equal(t, 0, pc.Len())

	_, err := Load(context.Background(), pc, PublicSkillsKey, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPublicCache_DeleteKeepsOtherViews(t *testing.T) {
	pc := NewPublicCache(60)
	for _, key := range []string{PublicSkillsKey, PublicResumesKey, PublicActiveKey} {
		_, err := Load(context.Background(), pc, key, func(context.Context) (string, error) { return key, nil })
		require.NoError(t, err)
	}
	require.Equal(t, 3, pc.Len())

	pc.Delete(PublicResumesKey, PublicActiveKey)
	assert.Equal(t, 1, pc.Len())

	calls := 0
	got, err := Load(context.Background(), pc, PublicSkillsKey, func(context.Context) (string, error) {
		calls++
		return "reloaded", nil
	})
	require.NoError(t, err)
	assert.Equal(t, PublicSkillsKey, got)
	assert.Zero(t, calls)
}

func TestPublicCache_ErrorsAreNotCached(t *testing.T) {
	pc := NewPublicCache(60)
	boom := errors.New("db down")

	_, err := Load(context.Background(), pc, PublicProjectsKey, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, pc.Len())
}

func TestPublicCache_Disabled(t *testing.T) {
	pc := NewPublicCache(-1)
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = Load(context.Background(), pc, "k", load)
	got, err := Load(context.Background(), pc, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPublicCache_Initialize(t *testing.T) {
	pc := NewPublicCache(0)
	assert.False(t, pc.IsReady())

	err := pc.Initialize(context.Background(), func(context.Context) error { return errors.New("nope") })
	assert.Error(t, err)
	assert.False(t, pc.IsReady())

	require.NoError(t, pc.Initialize(context.Background()))
	assert.True(t, pc.IsReady())
}

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "jti-expired", time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisRevocationStore(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.True(t, mr.Exists(revokedKeyPrefix+"jti-1"))
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL(revokedKeyPrefix+"jti-1").Seconds(), 5)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Ping(ctx))
}

func TestRedisRevocationStore_BadURL(t *testing.T) {
	_, err := NewRedisRevocationStore(context.Background(), "not a url")
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisRevocationStore(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}
