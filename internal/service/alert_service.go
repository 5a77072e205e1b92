package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

// AlertService handles back-in-stock subscriptions and price offers.
type AlertService struct {
	client *apiclient.Client
}

func NewAlertService(client *apiclient.Client) *AlertService {
	return &AlertService{client: client}
}

func (s *AlertService) SubscribeRestock(ctx context.Context, alert domain.RestockAlert) (*domain.Response[domain.RestockAlert], error) {
	body := map[string]string{
		"product_id": alert.ProductID.String(),
		"email":      alert.Email,
		"phone":      alert.Phone,
	}
	return apiclient.Send[domain.Response[domain.RestockAlert]](ctx, s.client, http.MethodPost, "/restock-alerts", body, true)
}

func (s *AlertService) ListRestock(ctx context.Context) (*domain.Response[[]domain.RestockAlert], error) {
	return apiclient.Do[domain.Response[[]domain.RestockAlert]](ctx, s.client, "/restock-alerts", apiclient.Get(), true)
}

func (s *AlertService) CancelRestock(ctx context.Context, id string) (*domain.Message, error) {
	return apiclient.Do[domain.Message](ctx, s.client, pathf("/restock-alerts/%s", id), apiclient.Delete(), true)
}

func (s *AlertService) SubmitOffer(ctx context.Context, offer domain.Offer) (*domain.Response[domain.Offer], error) {
	return apiclient.Send[domain.Response[domain.Offer]](ctx, s.client, http.MethodPost, "/offers", offer, true)
}
