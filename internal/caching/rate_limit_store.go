package caching

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const rateLimitKeyPrefix = "jobsapi:ratelimit:"

// RedisRateLimitStore is a fixed-window counter shared by every instance of
// the service. It satisfies echo's RateLimiterStore.
type RedisRateLimitStore struct {
	client  redis.Cmdable
	limit   int
	window  time.Duration
	timeout time.Duration
	log     zerolog.Logger
}

func NewRedisRateLimitStore(client redis.Cmdable, limit int, window time.Duration, log zerolog.Logger) *RedisRateLimitStore {
	return &RedisRateLimitStore{
		client:  client,
		limit:   limit,
		window:  window,
		timeout: 500 * time.Millisecond,
		log:     log,
	}
}

// Allow counts one request for identifier in the current window. Redis
// failures let the request through.
func (s *RedisRateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	count, err := s.hit(ctx, rateLimitKeyPrefix+identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit store unavailable")
		return true, nil
	}
	return count <= int64(s.limit), nil
}

func (s *RedisRateLimitStore) hit(ctx context.Context, key string) (int64, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count request: %w", err)
	}

	// A key without expiry is a fresh window (or one whose PEXPIRE was lost).
	if ttl.Val() < 0 {
		if err := s.client.PExpire(ctx, key, s.window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}
	return incr.Val(), nil
}
