package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache caches rendered public content responses in Redis. A nil
// *ContentCache is valid and disables caching, so callers never need to
// branch on whether Redis is configured.
type ContentCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewContentCache creates a ContentCache backed by the given Redis client.
func NewContentCache(client redis.UniversalClient, ttl time.Duration) *ContentCache {
	return &ContentCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload by key. A miss returns (nil, nil).
func (c *ContentCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// Set stores a payload under the given key with the cache TTL.
func (c *ContentCache) Set(ctx context.Context, key string, value []byte) error {
	if c == nil {
		return nil
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}

	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Invalidate removes every cached entry matching the given key prefix. Used
// after content mutations so public reads never serve stale pages.
func (c *ContentCache) Invalidate(ctx context.Context, prefix string) error {
	if c == nil {
		return nil
	}
	if prefix == "" {
		return errors.New("prefix cannot be empty")
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Health checks the health of the Redis connection.
func (c *ContentCache) Health(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
