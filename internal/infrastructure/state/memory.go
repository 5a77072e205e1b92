package state

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process StateStore with per-key expiry.
type MemoryStore struct {
	store *gocache.Cache
}

// NewMemoryStore creates a store that scans for expired keys every cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set stores value; a non-positive ttl never expires.
func (m *MemoryStore) Set(key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.store.Delete(key)
	return nil
}
