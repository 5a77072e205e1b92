package cache

import (
	"strings"
	"time"

	"hometex-storefront/pkg/cache"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds catalog lookups in process memory. Keys are namespaced
// ("product:id:7", "category:tree:all") so related entries can be dropped together.
type MemoryCache struct {
	items *gocache.Cache
}

var _ cache.CacheService = (*MemoryCache)(nil)

// NewMemoryCache expires entries after ttl unless Set is given its own, and
// sweeps expired entries every sweep.
func NewMemoryCache(ttl, sweep time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(ttl, sweep)}
}

func (m *MemoryCache) Get(key string) (any, bool) {
	return m.items.Get(key)
}

// Set stores value for ttl; zero uses the cache default.
func (m *MemoryCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.items.Set(key, value, ttl)
}

func (m *MemoryCache) Delete(key string) {
	m.items.Delete(key)
}

// DeleteMatching drops every live entry under prefix for which match reports
// true, and returns how many were dropped. A nil match drops the whole prefix.
func (m *MemoryCache) DeleteMatching(prefix string, match func(value any) bool) int {
	dropped := 0
	for key, item := range m.items.Items() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if match != nil && !match(item.Object) {
			continue
		}
		m.items.Delete(key)
		dropped++
	}
	return dropped
}

func (m *MemoryCache) Flush() {
	m.items.Flush()
}

// ItemCount includes expired entries the sweeper has not removed yet.
func (m *MemoryCache) ItemCount() int {
	return m.items.ItemCount()
}
