package service

import (
	"context"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ProductService covers the public catalog endpoints. Every product it returns is
// normalized.
type ProductService struct {
	client *apiclient.Client
}

func NewProductService(client *apiclient.Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter) (*domain.Paginated[domain.Product], error) {
	q := apiclient.NewQuery().
		AddInt("page", f.Page).
		AddInt("per_page", f.PerPage).
		Add("category", f.Category).
		Add("subcategory", f.Subcategory).
		Add("search", f.Search).
		Add("brand", f.Brand).
		Add("color", f.Color).
		Add("size", f.Size).
		AddFloat("min_price", f.MinPrice).
		AddFloat("max_price", f.MaxPrice).
		Add("sort", f.Sort).
		AddBool("in_stock", f.InStock)

	return s.page(ctx, q.Apply("/products-web"))
}

func (s *ProductService) Search(ctx context.Context, query string, page int) (*domain.Paginated[domain.Product], error) {
	q := apiclient.NewQuery().Add("q", query).AddInt("page", page)
	return s.page(ctx, q.Apply("/products-web/search"))
}

// GetDetails fetches one product. A 2xx response with success=false is returned
// as is; callers check Success.
func (s *ProductService) GetDetails(ctx context.Context, id string) (*domain.Response[domain.Product], error) {
	return s.single(ctx, pathf("/products-details-web/%s", id))
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Response[domain.Product], error) {
	return s.single(ctx, pathf("/products-web/slug/%s", slug))
}

func (s *ProductService) Related(ctx context.Context, id string) ([]domain.Product, error) {
	resp, err := apiclient.Do[domain.Response[[]RawProduct]](ctx, s.client, pathf("/products-web/%s/related", id), apiclient.Get(), false)
	if err != nil {
		return nil, err
	}
	return NormalizeProducts(resp.Value()), nil
}

func (s *ProductService) Categories(ctx context.Context) ([]domain.Category, error) {
	resp, err := apiclient.Do[domain.Response[[]domain.Category]](ctx, s.client, "/categories-web", apiclient.Get(), false)
	if err != nil {
		return nil, err
	}
	return resp.Value(), nil
}

// GetProductsByIDs fetches every id concurrently and packs the successful ones
// into a single page. Failed lookups never produce an error; their ids are listed
// in FailedIDs in input order.
func (s *ProductService) GetProductsByIDs(ctx context.Context, ids []string) *domain.ProductBatch {
	results := make([]*domain.Product, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			resp, err := s.GetDetails(ctx, id)
			if err != nil {
				logger.WithContext(ctx).Debug().Err(err).Str("product_id", id).Msg("Dropping product from batch")
				return nil
			}
			if resp.Success && resp.Data != nil {
				results[i] = resp.Data
			}
			return nil
		})
	}
	_ = g.Wait()

	batch := &domain.ProductBatch{}
	batch.Data = make([]domain.Product, 0, len(ids))
	for i, p := range results {
		if p == nil {
			batch.FailedIDs = append(batch.FailedIDs, ids[i])
			continue
		}
		batch.Data = append(batch.Data, *p)
	}
	batch.CurrentPage = 1
	batch.LastPage = 1
	batch.PerPage = len(batch.Data)
	batch.Total = len(batch.Data)
	return batch
}

func (s *ProductService) single(ctx context.Context, endpoint string) (*domain.Response[domain.Product], error) {
	resp, err := apiclient.Do[domain.Response[RawProduct]](ctx, s.client, endpoint, apiclient.Get(), false)
	if err != nil {
		return nil, err
	}

	out := &domain.Response[domain.Product]{Success: resp.Success, Message: resp.Message}
	if resp.Data != nil {
		p := NormalizeProduct(*resp.Data)
		out.Data = &p
	}
	return out, nil
}

func (s *ProductService) page(ctx context.Context, endpoint string) (*domain.Paginated[domain.Product], error) {
	resp, err := apiclient.Do[domain.Response[domain.Paginated[RawProduct]]](ctx, s.client, endpoint, apiclient.Get(), false)
	if err != nil {
		return nil, err
	}

	raw := resp.Value()
	return &domain.Paginated[domain.Product]{
		CurrentPage: raw.CurrentPage,
		Data:        NormalizeProducts(raw.Data),
		LastPage:    raw.LastPage,
		PerPage:     raw.PerPage,
		Total:       raw.Total,
		From:        raw.From,
		To:          raw.To,
		NextPageURL: raw.NextPageURL,
	}, nil
}
