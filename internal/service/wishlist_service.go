package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

type WishlistService struct {
	client *apiclient.Client
}

func NewWishlistService(client *apiclient.Client) *WishlistService {
	return &WishlistService{client: client}
}

func (s *WishlistService) Get(ctx context.Context) (*domain.Response[[]domain.RemoteWishlistItem], error) {
	return apiclient.Do[domain.Response[[]domain.RemoteWishlistItem]](ctx, s.client, "/wishlist", apiclient.Get(), true)
}

func (s *WishlistService) Add(ctx context.Context, productID string) (*domain.Message, error) {
	body := map[string]string{"product_id": productID}
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPost, "/wishlist/add", body, true)
}

func (s *WishlistService) Remove(ctx context.Context, productID string) (*domain.Message, error) {
	return apiclient.Do[domain.Message](ctx, s.client, pathf("/wishlist/remove/%s", productID), apiclient.Delete(), true)
}

func (s *WishlistService) Check(ctx context.Context, productID string) (*domain.Response[domain.WishlistCheck], error) {
	return apiclient.Do[domain.Response[domain.WishlistCheck]](ctx, s.client, pathf("/wishlist/check/%s", productID), apiclient.Get(), true)
}
