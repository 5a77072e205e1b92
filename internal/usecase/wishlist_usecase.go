package usecase

import (
	"context"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
)

type WishlistRemote interface {
	Get(ctx context.Context) (*domain.Response[[]domain.RemoteWishlistItem], error)
	Add(ctx context.Context, productID string) (*domain.Message, error)
	Remove(ctx context.Context, productID string) (*domain.Message, error)
}

type WishlistUsecase struct {
	remote WishlistRemote
	tokens domain.TokenStore
	now    func() time.Time
}

func NewWishlistUsecase(remote WishlistRemote, tokens domain.TokenStore) *WishlistUsecase {
	return &WishlistUsecase{
		remote: remote,
		tokens: tokens,
		now:    time.Now,
	}
}

// Items returns the wishlist, most recently added first.
func (u *WishlistUsecase) Items(ctx context.Context) ([]domain.WishlistItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	return u.load(ctx, store), nil
}

func (u *WishlistUsecase) Contains(ctx context.Context, productID string) (bool, error) {
	items, err := u.Items(ctx)
	if err != nil {
		return false, err
	}
	return wishlistIndex(items, productID) >= 0, nil
}

// Toggle adds product when absent and removes it when present. It reports
// whether the product is in the wishlist afterwards.
func (u *WishlistUsecase) Toggle(ctx context.Context, product domain.ProductRef) (bool, error) {
	if product.ID == "" {
		return false, domain.ErrInvalidProduct
	}
	store, err := session.Require(ctx)
	if err != nil {
		return false, err
	}
	items := u.load(ctx, store)

	if idx := wishlistIndex(items, product.ID); idx >= 0 {
		if authenticated(ctx, u.tokens) {
			if _, err := u.remote.Remove(ctx, product.ID); err != nil {
				return true, err
			}
		}
		items = append(items[:idx], items[idx+1:]...)
		return false, u.save(store, items)
	}

	if authenticated(ctx, u.tokens) {
		if _, err := u.remote.Add(ctx, product.ID); err != nil {
			return false, err
		}
	}
	item := domain.WishlistItem{Product: product, AddedAt: u.now().UnixMilli()}
	items = append([]domain.WishlistItem{item}, items...)
	return true, u.save(store, items)
}

func (u *WishlistUsecase) Remove(ctx context.Context, productID string) ([]domain.WishlistItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	items := u.load(ctx, store)
	idx := wishlistIndex(items, productID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	if authenticated(ctx, u.tokens) {
		if _, err := u.remote.Remove(ctx, productID); err != nil {
			return nil, err
		}
	}
	items = append(items[:idx], items[idx+1:]...)
	return items, u.save(store, items)
}

// Refresh replaces the local wishlist with the server copy for signed-in visitors.
func (u *WishlistUsecase) Refresh(ctx context.Context) ([]domain.WishlistItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	if !authenticated(ctx, u.tokens) {
		return u.load(ctx, store), nil
	}

	resp, err := u.remote.Get(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.WishlistItem, 0, len(resp.Value()))
	for _, ri := range resp.Value() {
		id := ri.ProductID.String()
		if id == "" || wishlistIndex(items, id) >= 0 {
			continue
		}
		item := domain.WishlistItem{
			Product: domain.ProductRef{ID: id, Name: ri.Name, Image: ri.Image, Price: ri.Price.Float64()},
		}
		if !ri.CreatedAt.IsZero() {
			item.AddedAt = ri.CreatedAt.UnixMilli()
		}
		items = append(items, item)
	}
	return items, u.save(store, items)
}

func (u *WishlistUsecase) load(ctx context.Context, store domain.StateStore) []domain.WishlistItem {
	var items []domain.WishlistItem
	if !session.Load(ctx, store, domain.WishlistKey, &items) {
		return []domain.WishlistItem{}
	}
	return items
}

func (u *WishlistUsecase) save(store domain.StateStore, items []domain.WishlistItem) error {
	if len(items) == 0 {
		return store.Delete(domain.WishlistKey)
	}
	return session.Save(store, domain.WishlistKey, items, domain.StateTTL)
}

func wishlistIndex(items []domain.WishlistItem, productID string) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
