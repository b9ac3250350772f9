package metrics

import (
	"context"

	"github.com/dewinson2/MJCL/internal/cache"
)

// instrumentedCache counts hits and misses of the wrapped cache
type instrumentedCache struct {
	cache.Cache
}

// InstrumentCache records every lookup in CacheLookups
func InstrumentCache(c cache.Cache) cache.Cache {
	return instrumentedCache{Cache: c}
}

func (c instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, ok := c.Cache.Get(ctx, key)
	if ok {
		CacheLookups.WithLabelValues(ResultHit).Inc()
	} else {
		CacheLookups.WithLabelValues(ResultMiss).Inc()
	}
	return value, ok
}
