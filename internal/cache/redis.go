package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dewinson2/MJCL/internal/logger"
)

// redisNamespace scopes every key so the cache can share a database.
const redisNamespace = "mjcl:cache:"

// scanBatch is the COUNT hint used while scanning for invalidation.
const scanBatch = 100

// Redis is a cache shared between replicas. Errors are logged and treated
// as misses so a Redis outage degrades to uncached reads.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to redisURL and verifies the connection.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (c *Redis) key(k string) string {
	return redisNamespace + versioned(k)
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logger.FromContext(ctx).Warn("Cache read failed", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *Redis) Invalidate(ctx context.Context, prefixes ...string) {
	for _, p := range prefixes {
		iter := c.client.Scan(ctx, 0, c.key(p)+"*", scanBatch).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			logger.FromContext(ctx).Error("Cache invalidation scan failed", "prefix", p, "error", err)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			logger.FromContext(ctx).Error("Cache invalidation failed", "prefix", p, "error", err)
		}
	}
}

// Ping checks the connection, for readiness probes.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Redis) Close() error {
	return c.client.Close()
}
