// Package cache holds rendered public responses until a write invalidates
// them or their TTL runs out.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SchemaVersion is part of every key. Bump it when the cached payload
// format changes so old entries are never served.
const SchemaVersion = "v1"

// Key prefixes for public responses
const (
	PrefixJobs    = "jobs:"
	PrefixContact = "contact:"
)

// Cache stores opaque payloads by key.
type Cache interface {
	// Get returns the payload and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	// Invalidate drops every entry whose key starts with one of the prefixes.
	Invalidate(ctx context.Context, prefixes ...string)
}

func versioned(key string) string {
	return SchemaVersion + ":" + key
}

// LRU is an in-process cache with per-entry expiry.
type LRU struct {
	lru *expirable.LRU[string, []byte]
}

// NewLRU creates a cache holding at most size entries for ttl each.
func NewLRU(size int, ttl time.Duration) *LRU {
	return &LRU{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, key string) ([]byte, bool) {
	return c.lru.Get(versioned(key))
}

func (c *LRU) Set(_ context.Context, key string, value []byte) {
	c.lru.Add(versioned(key), value)
}

func (c *LRU) Invalidate(_ context.Context, prefixes ...string) {
	for _, k := range c.lru.Keys() {
		for _, p := range prefixes {
			if strings.HasPrefix(k, versioned(p)) {
				c.lru.Remove(k)
				break
			}
		}
	}
}

// Len reports the number of live entries.
func (c *LRU) Len() int {
	return c.lru.Len()
}

// Nop never stores anything. Used when caching is disabled.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) {
	return nil, false
}

func (Nop) Set(context.Context, string, []byte) {}

func (Nop) Invalidate(context.Context, ...string) {}
