package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_, found, err := store.Lookup(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "s1", 5, 0))
	userID, found, err := store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(5), userID)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, found, err = store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", 9, time.Minute))

	_, found, err := store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(time.Minute)
	_, found, err = store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisSessionStore_ReportsConnectivityErrors(t *testing.T) {
	store := NewRedisSessionStore(newUnreachableRedis(t))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, store.Save(ctx, "s1", 1, 0))
	_, found, err := store.Lookup(ctx, "s1")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, store.Delete(ctx, "s1"))
}
