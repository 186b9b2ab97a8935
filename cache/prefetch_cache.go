package cache

import (
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultPrefetchSize = 256
	DefaultPrefetchTTL  = 60 * time.Second
)

// PrefetchCache holds filter responses warmed by navigation hover, keyed by
// ProductFilters.CanonicalKey. Entries expire after the TTL and the least
// recently used entry is evicted once the size bound is reached.
type PrefetchCache struct {
	lru *expirable.LRU[string, models.FilterResponse]
}

func NewPrefetchCache(size int, ttl time.Duration) *PrefetchCache {
	if size <= 0 {
		size = DefaultPrefetchSize
	}
	if ttl <= 0 {
		ttl = DefaultPrefetchTTL
	}
	return &PrefetchCache{lru: expirable.NewLRU[string, models.FilterResponse](size, nil, ttl)}
}

func (c *PrefetchCache) Get(key string) (models.FilterResponse, bool) {
	return c.lru.Get(key)
}

func (c *PrefetchCache) Set(key string, resp models.FilterResponse) {
	c.lru.Add(key, resp)
}

// Invalidate drops everything (call on any product create/update/delete)
func (c *PrefetchCache) Invalidate() {
	c.lru.Purge()
}

func (c *PrefetchCache) Len() int {
	return c.lru.Len()
}
