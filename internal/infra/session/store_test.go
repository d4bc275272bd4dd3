package session

import (
	"context"
	"testing"
	"time"

	"otobiznes/config"
	"otobiznes/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (service.TokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTokenStore(client, ttl), mr
}

func TestTokenStores_Contract(t *testing.T) {
	stores := map[string]func(t *testing.T) service.TokenStore{
		"memory": func(t *testing.T) service.TokenStore { return NewMemoryTokenStore(time.Hour) },
		"redis": func(t *testing.T) service.TokenStore {
			store, _ := newRedisStore(t, time.Hour)
			return store
		},
	}

	for name, build := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := build(t)

			_, err := store.Load(ctx, "sid-1")
			assert.ErrorIs(t, err, service.ErrTokenNotFound)

			require.NoError(t, store.Save(ctx, "sid-1", "token-a"))
			require.NoError(t, store.Save(ctx, "sid-1", "token-b"))

			token, err := store.Load(ctx, "sid-1")
			require.NoError(t, err)
			assert.Equal(t, "token-b", token)

			require.NoError(t, store.Delete(ctx, "sid-1"))
			require.NoError(t, store.Delete(ctx, "sid-1"))

			_, err = store.Load(ctx, "sid-1")
			assert.ErrorIs(t, err, service.ErrTokenNotFound)
		})
	}
}

func TestRedisTokenStore_KeyAndTTL(t *testing.T) {
	store, mr := newRedisStore(t, 30*time.Minute)

	require.NoError(t, store.Save(context.Background(), "abc", "tok"))

	value, err := mr.Get("otobiznes:session:abc")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
	assert.Equal(t, 30*time.Minute, mr.TTL("otobiznes:session:abc"))

	mr.FastForward(31 * time.Minute)
	_, err = store.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(time.Minute).(*memoryTokenStore)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), "sid", "tok"))

	now = now.Add(2 * time.Minute)
	_, err := store.Load(context.Background(), "sid")

	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestMemoryTokenStore_SaveSweepsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(time.Minute).(*memoryTokenStore)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), "abandoned", "tok-1"))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(context.Background(), "recent", "tok-2"))

	now = now.Add(45 * time.Second)
	require.NoError(t, store.Save(context.Background(), "new", "tok-3"))

	assert.NotContains(t, store.entries, "abandoned")
	assert.Contains(t, store.entries, "recent")
	assert.Contains(t, store.entries, "new")
}

func TestRedisOptions(t *testing.T) {
	opt, err := redisOptions(&config.RedisConfig{URL: "redis://:pw@cache:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 2, opt.DB)

	opt, err = redisOptions(&config.RedisConfig{})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opt.Addr)

	_, err = redisOptions(&config.RedisConfig{URL: "http://nope"})
	assert.Error(t, err)
}
