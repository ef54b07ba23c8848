package flights

import (
	"time"

	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 128
	defaultCacheTTL  = 5 * time.Minute
)

// pageCache holds recent result pages keyed by model.Filters.CacheKey.
// Entries expire after ttl; the least recently used entry is evicted when full.
type pageCache struct {
	lru *expirable.LRU[string, model.FlightPage]
}

// newPageCache creates a cache. A negative size disables caching.
func newPageCache(size int, ttl time.Duration) *pageCache {
	if size < 0 {
		return nil
	}
	if size == 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &pageCache{
		lru: expirable.NewLRU[string, model.FlightPage](size, nil, ttl),
	}
}

// get retrieves a page if it exists and hasn't expired.
func (c *pageCache) get(key string) (model.FlightPage, bool) {
	if c == nil {
		return model.FlightPage{}, false
	}
	return c.lru.Get(key)
}

// set stores a page.
func (c *pageCache) set(key string, page model.FlightPage) {
	if c == nil {
		return
	}
	c.lru.Add(key, page)
}

// clear removes all entries from the cache.
func (c *pageCache) clear() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

// size returns the number of live entries.
func (c *pageCache) size() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
