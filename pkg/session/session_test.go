package session

import (
	"context"
	"os"
	"testing"
	"time"

	"guestsign/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, b := NewToken(), NewToken()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	s, err := m.Start(ctx, 1, "admin")
	require.NoError(t, err)
	assert.True(t, s.CreatedAt.Add(time.Hour).Equal(s.ExpiresAt))

	got, err := m.Load(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, uint64(1), got.UserID)

	require.NoError(t, m.Destroy(ctx, s.Token))
	_, err = m.Load(ctx, s.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerEmptyToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	_, err := m.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, m.Destroy(context.Background(), ""))
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	m := NewManager(store, 30*time.Minute)
	m.now = store.now
	ctx := context.Background()

	s, err := m.Start(ctx, 1, "admin")
	require.NoError(t, err)

	now = now.Add(29 * time.Minute)
	_, err = m.Load(ctx, s.Token)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = m.Load(ctx, s.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Empty(t, store.sessions)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client, err := redis.NewClient(redis.RedisConfig{Address: addr, PoolSize: 2})
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, "guestsign:test:session:")
	m := NewManager(store, time.Second)
	ctx := context.Background()

	s, err := m.Start(ctx, 9, "admin")
	require.NoError(t, err)

	got, err := m.Load(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.UserID)

	assert.Eventually(t, func() bool {
		_, err := m.Load(ctx, s.Token)
		return err == ErrSessionNotFound
	}, 3*time.Second, 100*time.Millisecond)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
