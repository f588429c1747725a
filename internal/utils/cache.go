package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"strconv"       // Generation parsing
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache is a JSON read-through cache on Redis. A nil *Cache is valid and
// behaves as an always-empty cache, so callers need no enabled checks.
type Cache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of every entry
}

// NewCache wraps a Redis client; entries expire after ttl
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil // Caching disabled
	}
	val, err := c.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest) // Unmarshal JSON into dest
}

// Set stores value as JSON with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil // Caching disabled
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err() // Set value in Redis with TTL
}

// Generation returns the current generation of scope (0 when never bumped).
// Keys built from a generation go stale as soon as Bump is called.
func (c *Cache) Generation(ctx context.Context, scope string) (int64, error) {
	if c == nil {
		return 0, nil // Caching disabled
	}
	val, err := c.rdb.Get(ctx, scope+":gen").Result() // Read the counter
	if errors.Is(err, redis.Nil) {
		return 0, nil // Never written
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Bump invalidates every key derived from the current generation of scope
func (c *Cache) Bump(ctx context.Context, scope string) error {
	if c == nil {
		return nil // Caching disabled
	}
	return c.rdb.Incr(ctx, scope+":gen").Err() // Increment the counter
}
