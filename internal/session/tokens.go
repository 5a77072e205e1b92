package session

import (
	"context"
	"time"

	"hometex-storefront/internal/domain"
)

// Tokens is the TokenStore backed by the request's state store. Fallback, when
// set, is used for contexts without a store (background jobs, tools).
type Tokens struct {
	Fallback domain.StateStore
	TTL      time.Duration
}

func NewTokens(fallback domain.StateStore) *Tokens {
	return &Tokens{Fallback: fallback, TTL: domain.TokenTTL}
}

func (t *Tokens) store(ctx context.Context) (domain.StateStore, bool) {
	if store, ok := FromContext(ctx); ok {
		return store, true
	}
	if t.Fallback != nil {
		return t.Fallback, true
	}
	return nil, false
}

func (t *Tokens) GetToken(ctx context.Context) (string, bool) {
	store, ok := t.store(ctx)
	if !ok {
		return "", false
	}
	token, ok := store.Get(domain.TokenKey)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (t *Tokens) SetToken(ctx context.Context, token string) error {
	store, ok := t.store(ctx)
	if !ok {
		return domain.ErrNoSession
	}
	return store.Set(domain.TokenKey, token, t.TTL)
}

func (t *Tokens) ClearToken(ctx context.Context) error {
	store, ok := t.store(ctx)
	if !ok {
		return domain.ErrNoSession
	}
	return store.Delete(domain.TokenKey)
}
