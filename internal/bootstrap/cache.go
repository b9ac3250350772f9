package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/config"
	"github.com/dewinson2/MJCL/internal/metrics"
)

// InitializeCache picks the response cache: Redis when REDIS_URL is set, an
// in-process LRU otherwise, nothing when CACHE_SIZE is zero. The returned
// *cache.Redis is nil unless Redis is in use.
func InitializeCache(ctx context.Context, cfg *config.Config) (cache.Cache, *cache.Redis, error) {
	if cfg.RedisURL != "" {
		r, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		slog.Info(LogMsgUsingRedisCache, "ttl", cfg.CacheTTL)
		return metrics.InstrumentCache(r), r, nil
	}

	if cfg.CacheSize == 0 {
		slog.Info(LogMsgCacheDisabled)
		return cache.Nop{}, nil, nil
	}

	slog.Info(LogMsgUsingLRUCache, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	return metrics.InstrumentCache(cache.NewLRU(cfg.CacheSize, cfg.CacheTTL)), nil, nil
}
