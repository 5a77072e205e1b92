package cache

import "time"

// CacheService is the key/value cache behind catalog lookups.
type CacheService interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	// DeleteMatching drops entries under prefix whose value satisfies match.
	DeleteMatching(prefix string, match func(value any) bool) int
	Flush()
	ItemCount() int
}

// Remember returns the value cached under key, or calls load and caches its result.
// Errors are not cached.
func Remember[T any](c CacheService, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if val, found := c.Get(key); found {
		if typed, ok := val.(T); ok {
			return typed, nil
		}
		c.Delete(key)
	}

	val, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, val, ttl)
	return val, nil
}
