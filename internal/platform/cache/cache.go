// Package cache provides a Redis/Dragonfly-backed cache for raw sheet text.
//
// Published spreadsheets are slow to export and rate-limited; caching the raw
// TSV between load cycles keeps reloads cheap. The cache is strictly
// best-effort: a miss and a Redis failure look the same to callers, and
// neither blocks a fetch.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis/Dragonfly client.
type Cache struct {
	Client *redis.Client
}

// ParseURL validates a Redis connection URL.
func ParseURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("cache URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}
	return opts, nil
}

// New creates a new cache client and verifies connectivity.
func New(ctx context.Context, url string) (*Cache, error) {
	opts, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	return &Cache{Client: client}, nil
}

// Close shuts down the cache client.
func (c *Cache) Close() error {
	return c.Client.Close()
}

// HealthCheck verifies the cache connection is alive.
func (c *Cache) HealthCheck(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// SheetKey derives the cache key for a sheet URL. URLs are hashed: published
// sheet URLs are long and carry opaque tokens that should not end up verbatim
// in Redis keyspace listings.
func SheetKey(url string) string {
	return fmt.Sprintf("capyhoc:sheet:%x", sha256.Sum256([]byte(url)))
}

// GetSheet returns the cached raw text for a sheet URL, or "" on a miss.
func (c *Cache) GetSheet(ctx context.Context, url string) (string, error) {
	text, err := c.Client.Get(ctx, SheetKey(url)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading cached sheet: %w", err)
	}
	return text, nil
}

// SetSheet stores raw sheet text with the given TTL.
func (c *Cache) SetSheet(ctx context.Context, url, text string, ttl time.Duration) error {
	if err := c.Client.Set(ctx, SheetKey(url), text, ttl).Err(); err != nil {
		return fmt.Errorf("caching sheet: %w", err)
	}
	return nil
}
