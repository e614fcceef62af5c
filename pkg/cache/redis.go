// Package cache provides an optional Redis read-through cache for catalog
// listing queries. A nil *QueryCache is a no-op, so callers never need to
// branch on whether caching is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const versionKey = "catalog:version"

// QueryCache caches serialised query results under a versioned key. Catalog
// mutations bump the version instead of deleting keys; entries written under
// old versions simply expire with their TTL.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr and verifies the connection with a ping.
func New(addr string, ttl time.Duration) (*QueryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &QueryCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *QueryCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get loads the cached value for key into dest. It returns false on a miss,
// on a decode failure, or when the cache is disabled.
func (c *QueryCache) Get(key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	ctx, cancel := c.opContext()
	defer cancel()

	raw, err := c.client.Get(ctx, c.versionedKey(ctx, key)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache: failed to decode entry for %q: %v", key, err)
		return false
	}
	return true
}

// Set stores v under key with the configured TTL. Failures are logged and
// otherwise ignored; the cache is best-effort.
func (c *QueryCache) Set(key string, v interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: failed to encode entry for %q: %v", key, err)
		return
	}

	ctx, cancel := c.opContext()
	defer cancel()

	if err := c.client.Set(ctx, c.versionedKey(ctx, key), raw, c.ttl).Err(); err != nil {
		log.Printf("cache: failed to store entry for %q: %v", key, err)
	}
}

// Invalidate bumps the catalog version, orphaning every cached query result.
func (c *QueryCache) Invalidate() {
	if c == nil {
		return
	}
	ctx, cancel := c.opContext()
	defer cancel()

	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		log.Printf("cache: failed to bump catalog version: %v", err)
	}
}

func (c *QueryCache) versionedKey(ctx context.Context, key string) string {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("catalog:v%d:%s", version, key)
}

func (c *QueryCache) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
