// Package session carries the visitor's client-side state store through request
// contexts and exposes the bearer token kept in it.
package session

import (
	"context"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"

	"github.com/goccy/go-json"
)

type ctxKey struct{}

// NewContext returns a context carrying store.
func NewContext(ctx context.Context, store domain.StateStore) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// FromContext returns the store carried by ctx.
func FromContext(ctx context.Context) (domain.StateStore, bool) {
	store, ok := ctx.Value(ctxKey{}).(domain.StateStore)
	return store, ok && store != nil
}

// Require is FromContext returning domain.ErrNoSession when no store is present.
func Require(ctx context.Context) (domain.StateStore, error) {
	store, ok := FromContext(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}
	return store, nil
}

// Load decodes the JSON value stored under key into v. A missing or unreadable
// value reports false and leaves v untouched.
func Load(ctx context.Context, store domain.StateStore, key string, v any) bool {
	raw, ok := store.Get(key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("key", key).Msg("Discarding unreadable client state")
		return false
	}
	return true
}

// Save JSON-encodes v under key.
func Save(store domain.StateStore, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(key, string(b), ttl)
}
