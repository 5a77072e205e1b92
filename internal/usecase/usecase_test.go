package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/infrastructure/state"
	"hometex-storefront/internal/session"

	"github.com/stretchr/testify/require"
)

// visitor returns a context carrying a fresh state store, plus the store and a
// token store reading from it.
func visitor(t *testing.T) (context.Context, *state.MemoryStore, *session.Tokens) {
	t.Helper()
	store := state.NewMemoryStore(time.Minute)
	return session.NewContext(context.Background(), store), store, session.NewTokens(nil)
}

func signIn(t *testing.T, ctx context.Context, tokens *session.Tokens) {
	t.Helper()
	require.NoError(t, tokens.SetToken(ctx, "token"))
}

var errRemote = errors.New("remote unavailable")

type fakeCartRemote struct {
	calls []string
	fail  bool
	cart  domain.RemoteCart
}

func (f *fakeCartRemote) record(call string) error {
	f.calls = append(f.calls, call)
	if f.fail {
		return errRemote
	}
	return nil
}

func (f *fakeCartRemote) Get(ctx context.Context) (*domain.Response[domain.RemoteCart], error) {
	if err := f.record("get"); err != nil {
		return nil, err
	}
	return &domain.Response[domain.RemoteCart]{Success: true, Data: &f.cart}, nil
}

func (f *fakeCartRemote) Add(ctx context.Context, req domain.AddToCartRequest) (*domain.Response[domain.RemoteCart], error) {
	if err := f.record(fmt.Sprintf("add %s x%d", req.ProductID, req.Quantity)); err != nil {
		return nil, err
	}
	return &domain.Response[domain.RemoteCart]{Success: true}, nil
}

func (f *fakeCartRemote) UpdateQuantity(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error) {
	if err := f.record(fmt.Sprintf("update %s x%d", line.ProductID, line.Quantity)); err != nil {
		return nil, err
	}
	return &domain.Response[domain.RemoteCart]{Success: true}, nil
}

func (f *fakeCartRemote) Remove(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error) {
	if err := f.record("remove " + line.ProductID); err != nil {
		return nil, err
	}
	return &domain.Response[domain.RemoteCart]{Success: true}, nil
}

func (f *fakeCartRemote) Clear(ctx context.Context) (*domain.Message, error) {
	if err := f.record("clear"); err != nil {
		return nil, err
	}
	return &domain.Message{Success: true}, nil
}

type fakeWishlistRemote struct {
	calls []string
	fail  bool
	items []domain.RemoteWishlistItem
}

func (f *fakeWishlistRemote) Get(ctx context.Context) (*domain.Response[[]domain.RemoteWishlistItem], error) {
	if f.fail {
		return nil, errRemote
	}
	return &domain.Response[[]domain.RemoteWishlistItem]{Success: true, Data: &f.items}, nil
}

func (f *fakeWishlistRemote) Add(ctx context.Context, productID string) (*domain.Message, error) {
	f.calls = append(f.calls, "add "+productID)
	if f.fail {
		return nil, errRemote
	}
	return &domain.Message{Success: true}, nil
}

func (f *fakeWishlistRemote) Remove(ctx context.Context, productID string) (*domain.Message, error) {
	f.calls = append(f.calls, "remove "+productID)
	if f.fail {
		return nil, errRemote
	}
	return &domain.Message{Success: true}, nil
}

// fixedClock returns successive instants one second apart.
func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}
