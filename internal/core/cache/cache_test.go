package cache

import (
	"context"
	"testing"
	"time"

	"recipe-converter/internal/infrastructure/config"
	"recipe-converter/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(maxSize int, ttl time.Duration) *CacheManager {
	return NewManager(config.CacheConfig{
		Enabled: true,
		Backend: config.CacheBackendMemory,
		MaxSize: maxSize,
		TTL:     ttl,
	})
}

func TestManagerGetSet(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(10, time.Minute)
	defer m.Close()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", "v"))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
	assert.InDelta(t, 0.5, stats["hit_ratio"], 1e-9)
}

func TestManagerExpiry(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(10, 20*time.Millisecond)
	defer m.Close()

	require.NoError(t, m.Set(ctx, "k", "v"))
	time.Sleep(40 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	assert.Equal(t, int64(1), m.GetStats()["evictions"])
}

func TestManagerEvictsLeastUsed(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(2, time.Minute)
	defer m.Close()

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	got, err = m.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestManagerOverwriteDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(1, time.Minute)
	defer m.Close()

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "a", "2"))
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
	assert.Equal(t, int64(0), m.GetStats()["evictions"])
}

func TestManagerCloseIsIdempotent(t *testing.T) {
	m := NewManager(config.CacheConfig{MaxSize: 1, TTL: time.Minute, CleanupInterval: time.Millisecond})
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	disabled, err := New(ctx, &config.Config{Cache: config.CacheConfig{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, disabled)

	memory, err := New(ctx, &config.Config{Cache: config.CacheConfig{
		Enabled: true, Backend: config.CacheBackendMemory, MaxSize: 5, TTL: time.Minute,
	}})
	require.NoError(t, err)
	require.NotNil(t, memory)
	assert.IsType(t, &CacheManager{}, memory)
	assert.NoError(t, memory.Close())

	_, err = New(ctx, &config.Config{Cache: config.CacheConfig{Enabled: true, Backend: "memcached"}})
	assert.Error(t, err)
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"}, time.Minute)
	assert.Error(t, err)
}

func TestRedisStorePingUnreachable(t *testing.T) {
	store := NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)
	defer store.Close()

	var p Pinger = store
	assert.Error(t, p.Ping(context.Background()))
}

func TestKey(t *testing.T) {
	a := Key("us", "metric", "1 cup sugar")
	assert.Equal(t, a, Key("us", "metric", "1 cup sugar"))
	assert.NotEqual(t, a, Key("uk", "metric", "1 cup sugar"))
	assert.NotEqual(t, a, Key("us", "metric", "2 cups sugar"))
	assert.Contains(t, a, "convert:")
}
