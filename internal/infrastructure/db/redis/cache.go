package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores rendered GET responses keyed by request path, so
// repeated listings do not hit MongoDB on every refresh.
// Key format: cache:<path>
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache wraps the given Redis client. TTL must be positive.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl}
}

// Get returns the cached body for path, or (nil, false, nil) on a miss.
func (c *ResponseCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return body, true, nil
}

// Set stores the body for path, expiring after the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, path string, body []byte) error {
	return c.client.Set(ctx, c.key(path), body, c.ttl).Err()
}

func (c *ResponseCache) key(path string) string {
	return "cache:" + path
}
