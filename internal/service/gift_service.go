package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

type GiftService struct {
	client *apiclient.Client
}

func NewGiftService(client *apiclient.Client) *GiftService {
	return &GiftService{client: client}
}

func (s *GiftService) ListCards(ctx context.Context) (*domain.Response[[]domain.GiftCard], error) {
	return apiclient.Do[domain.Response[[]domain.GiftCard]](ctx, s.client, "/gift-cards", apiclient.Get(), false)
}

func (s *GiftService) Purchase(ctx context.Context, p domain.GiftPurchase) (*domain.Response[domain.GiftCard], error) {
	return apiclient.Send[domain.Response[domain.GiftCard]](ctx, s.client, http.MethodPost, "/gift-cards/purchase", p, true)
}

func (s *GiftService) Redeem(ctx context.Context, code string) (*domain.Response[domain.GiftCard], error) {
	body := map[string]string{"code": code}
	return apiclient.Send[domain.Response[domain.GiftCard]](ctx, s.client, http.MethodPost, "/gift-cards/redeem", body, true)
}

func (s *GiftService) Balance(ctx context.Context, code string) (*domain.Response[domain.GiftCard], error) {
	endpoint := apiclient.NewQuery().Add("code", code).Apply("/gift-cards/balance")
	return apiclient.Do[domain.Response[domain.GiftCard]](ctx, s.client, endpoint, apiclient.Get(), true)
}
