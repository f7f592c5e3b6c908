// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a RateLimitStore shared by every API instance using the same Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore backed by client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

// Increment implements RateLimitStore. The expiry is only set by the first hit
// so the window does not slide.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	hits, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if hits == 1 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return hits, nil
}
