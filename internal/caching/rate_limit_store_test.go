package caching

import (
	"context"
	"testing"
	"time"

	"jobsapi/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimitStore_LimitsWithinWindow(t *testing.T) {
	_, client := setupRedis(t)
	store := NewRedisRateLimitStore(client, 3, 15*time.Minute, zerolog.Nop())

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "other clients have their own window")
}

func TestRedisRateLimitStore_WindowResets(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisRateLimitStore(client, 1, 15*time.Minute, zerolog.Nop())

	allowed, _ := store.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = store.Allow("10.0.0.1")
	assert.False(t, allowed)

	assert.Equal(t, 15*time.Minute, mr.TTL(rateLimitKeyPrefix+"10.0.0.1"))

	mr.FastForward(15*time.Minute + time.Second)

	allowed, _ = store.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestRedisRateLimitStore_FailsOpen(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisRateLimitStore(client, 1, time.Minute, zerolog.Nop())
	mr.Close()

	allowed, err := store.Allow("10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())

	urlClient, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer urlClient.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
