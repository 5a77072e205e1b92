package usecase

import (
	"context"
	"errors"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
)

// RecentlyViewedUsecase keeps the last viewed products, newest first, unique by id.
type RecentlyViewedUsecase struct {
	limit int
	now   func() time.Time
}

func NewRecentlyViewedUsecase() *RecentlyViewedUsecase {
	return &RecentlyViewedUsecase{
		limit: domain.RecentlyViewedLimit,
		now:   time.Now,
	}
}

func (u *RecentlyViewedUsecase) Record(ctx context.Context, p domain.Product) ([]domain.RecentView, error) {
	if p.ID == "" {
		return nil, domain.ErrInvalidProduct
	}
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	view := domain.RecentView{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		ViewedAt:      u.now().UnixMilli(),
	}

	views := make([]domain.RecentView, 0, u.limit)
	views = append(views, view)
	for _, v := range u.load(ctx, store) {
		if v.ID == p.ID {
			continue
		}
		if len(views) == u.limit {
			break
		}
		views = append(views, v)
	}

	// Older views give way when the list outgrows its cookie.
	for {
		err := session.Save(store, domain.RecentlyViewedKey, views, domain.StateTTL)
		if !errors.Is(err, domain.ErrStateTooLarge) || len(views) == 1 {
			return views, err
		}
		views = views[:len(views)-1]
	}
}

func (u *RecentlyViewedUsecase) List(ctx context.Context) ([]domain.RecentView, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	return u.load(ctx, store), nil
}

func (u *RecentlyViewedUsecase) Clear(ctx context.Context) error {
	store, err := session.Require(ctx)
	if err != nil {
		return err
	}
	return store.Delete(domain.RecentlyViewedKey)
}

func (u *RecentlyViewedUsecase) load(ctx context.Context, store domain.StateStore) []domain.RecentView {
	var views []domain.RecentView
	if !session.Load(ctx, store, domain.RecentlyViewedKey, &views) {
		return []domain.RecentView{}
	}
	if len(views) > u.limit {
		views = views[:u.limit]
	}
	return views
}
