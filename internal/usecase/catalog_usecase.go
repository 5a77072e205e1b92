package usecase

import (
	"context"
	"fmt"

	"hometex-storefront/config"
	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
	"hometex-storefront/pkg/cache"
	"hometex-storefront/pkg/logger"
)

type ProductSource interface {
	List(ctx context.Context, f domain.ProductFilter) (*domain.Paginated[domain.Product], error)
	Search(ctx context.Context, query string, page int) (*domain.Paginated[domain.Product], error)
	GetDetails(ctx context.Context, id string) (*domain.Response[domain.Product], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Response[domain.Product], error)
	Related(ctx context.Context, id string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	GetProductsByIDs(ctx context.Context, ids []string) *domain.ProductBatch
}

type CatalogUsecase struct {
	products ProductSource
	cache    cache.CacheService
	recent   *RecentlyViewedUsecase
	cfg      *config.Config
}

func NewCatalogUsecase(products ProductSource, cache cache.CacheService, recent *RecentlyViewedUsecase, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		products: products,
		cache:    cache,
		recent:   recent,
		cfg:      cfg,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, f domain.ProductFilter) (*domain.Paginated[domain.Product], error) {
	return u.products.List(ctx, f)
}

func (u *CatalogUsecase) Search(ctx context.Context, query string, page int) (*domain.Paginated[domain.Product], error) {
	return u.products.Search(ctx, query, page)
}

// Product returns one product by id. Only successful lookups are cached.
func (u *CatalogUsecase) Product(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidProduct
	}
	return cache.Remember(u.cache, fmt.Sprintf("product:id:%s", id), u.cfg.CacheProductTTL, func() (*domain.Product, error) {
		resp, err := u.products.GetDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (u *CatalogUsecase) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return cache.Remember(u.cache, fmt.Sprintf("product:slug:%s", slug), u.cfg.CacheProductTTL, func() (*domain.Product, error) {
		resp, err := u.products.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

// ViewProduct returns the product and records it as recently viewed. A failure
// to record does not fail the view.
func (u *CatalogUsecase) ViewProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := u.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := session.FromContext(ctx); ok {
		if _, err := u.recent.Record(ctx, *p); err != nil {
			logger.WithContext(ctx).Warn().Err(err).Str("product_id", id).Msg("Failed to record recent view")
		}
	}
	return p, nil
}

func (u *CatalogUsecase) Related(ctx context.Context, id string) ([]domain.Product, error) {
	return u.products.Related(ctx, id)
}

func (u *CatalogUsecase) Batch(ctx context.Context, ids []string) *domain.ProductBatch {
	return u.products.GetProductsByIDs(ctx, dedupe(ids))
}

func (u *CatalogUsecase) Categories(ctx context.Context) ([]domain.Category, error) {
	return cache.Remember(u.cache, "category:tree:all", u.cfg.CacheCategoryTTL, func() ([]domain.Category, error) {
		return u.products.Categories(ctx)
	})
}

// InvalidateProduct drops cached lookups for id, including those made by slug.
func (u *CatalogUsecase) InvalidateProduct(id string) {
	u.cache.Delete(fmt.Sprintf("product:id:%s", id))
	u.cache.DeleteMatching("product:slug:", func(v any) bool {
		p, ok := v.(*domain.Product)
		return ok && p != nil && p.ID == id
	})
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
