package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

// CartService is the authenticated user's server-side cart.
type CartService struct {
	client *apiclient.Client
}

func NewCartService(client *apiclient.Client) *CartService {
	return &CartService{client: client}
}

func (s *CartService) Get(ctx context.Context) (*domain.Response[domain.RemoteCart], error) {
	return apiclient.Do[domain.Response[domain.RemoteCart]](ctx, s.client, "/cart", apiclient.Get(), true)
}

func (s *CartService) Add(ctx context.Context, req domain.AddToCartRequest) (*domain.Response[domain.RemoteCart], error) {
	return apiclient.Send[domain.Response[domain.RemoteCart]](ctx, s.client, http.MethodPost, "/cart/add", req, true)
}

func (s *CartService) UpdateQuantity(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error) {
	return apiclient.Send[domain.Response[domain.RemoteCart]](ctx, s.client, http.MethodPut, "/cart/update", line, true)
}

func (s *CartService) Remove(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error) {
	line.Quantity = 0
	return apiclient.Send[domain.Response[domain.RemoteCart]](ctx, s.client, http.MethodPost, "/cart/remove", line, true)
}

func (s *CartService) Clear(ctx context.Context) (*domain.Message, error) {
	return apiclient.Do[domain.Message](ctx, s.client, "/cart/clear", apiclient.Delete(), true)
}
