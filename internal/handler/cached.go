package handler

import (
	"net/http"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/logger"
)

// Cache response header
const (
	HeaderCache = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// serveCached answers from the cache when the key is present. Otherwise it
// calls build and caches the encoded payload when build reports 200 OK from
// a fresh read. Fallbacks served while storage is failing are never stored.
func serveCached(w http.ResponseWriter, r *http.Request, c cache.Cache, key string, build func() (status int, payload interface{}, fresh bool)) {
	ctx := r.Context()
	if body, ok := c.Get(ctx, key); ok {
		w.Header().Set(HeaderCache, cacheHit)
		respondRaw(w, http.StatusOK, body)
		return
	}

	status, payload, fresh := build()
	body, err := encodeJSON(payload)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to encode JSON response", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	if status == http.StatusOK && fresh {
		c.Set(ctx, key, body)
	}

	w.Header().Set(HeaderCache, cacheMiss)
	respondRaw(w, status, body)
}
