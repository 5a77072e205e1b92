package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

type OrderService struct {
	client *apiclient.Client
}

func NewOrderService(client *apiclient.Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) List(ctx context.Context, page int, status string) (*domain.Response[domain.Paginated[domain.Order]], error) {
	endpoint := apiclient.NewQuery().AddInt("page", page).Add("status", status).Apply("/orders")
	return apiclient.Do[domain.Response[domain.Paginated[domain.Order]]](ctx, s.client, endpoint, apiclient.Get(), true)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Response[domain.Order], error) {
	return apiclient.Do[domain.Response[domain.Order]](ctx, s.client, pathf("/orders/%s", id), apiclient.Get(), true)
}

func (s *OrderService) Create(ctx context.Context, checkout domain.CheckoutRequest) (*domain.Response[domain.Order], error) {
	return apiclient.Send[domain.Response[domain.Order]](ctx, s.client, http.MethodPost, "/orders", checkout, true)
}

func (s *OrderService) Cancel(ctx context.Context, id, reason string) (*domain.Response[domain.Order], error) {
	body := map[string]string{"reason": reason}
	return apiclient.Send[domain.Response[domain.Order]](ctx, s.client, http.MethodPost, pathf("/orders/%s/cancel", id), body, true)
}

// TrackByInvoice is public so guests can follow an order from the confirmation email.
func (s *OrderService) TrackByInvoice(ctx context.Context, invoice string) (*domain.Response[domain.Order], error) {
	return apiclient.Do[domain.Response[domain.Order]](ctx, s.client, pathf("/orders/track/%s", invoice), apiclient.Get(), false)
}
