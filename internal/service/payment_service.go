package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

type PaymentService struct {
	client *apiclient.Client
}

func NewPaymentService(client *apiclient.Client) *PaymentService {
	return &PaymentService{client: client}
}

func (s *PaymentService) Methods(ctx context.Context) (*domain.Response[[]domain.PaymentMethod], error) {
	return apiclient.Do[domain.Response[[]domain.PaymentMethod]](ctx, s.client, "/payment-methods", apiclient.Get(), false)
}

func (s *PaymentService) Initiate(ctx context.Context, orderID, method string) (*domain.Response[domain.PaymentSession], error) {
	body := map[string]string{"order_id": orderID, "payment_method": method}
	return apiclient.Send[domain.Response[domain.PaymentSession]](ctx, s.client, http.MethodPost, "/payment/initiate", body, true)
}

func (s *PaymentService) Status(ctx context.Context, transactionID string) (*domain.Response[domain.PaymentStatus], error) {
	return apiclient.Do[domain.Response[domain.PaymentStatus]](ctx, s.client, pathf("/payment/status/%s", transactionID), apiclient.Get(), true)
}
