package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

type ContactService struct {
	client *apiclient.Client
}

func NewContactService(client *apiclient.Client) *ContactService {
	return &ContactService{client: client}
}

func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) (*domain.Message, error) {
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPost, "/contact", msg, false)
}

func (s *ContactService) SubscribeNewsletter(ctx context.Context, email string) (*domain.Message, error) {
	body := map[string]string{"email": email}
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPost, "/newsletter/subscribe", body, false)
}
