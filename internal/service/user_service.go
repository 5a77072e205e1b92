package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

// UserService is the signed-in customer's account area.
type UserService struct {
	client *apiclient.Client
}

func NewUserService(client *apiclient.Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) Profile(ctx context.Context) (*domain.Response[domain.User], error) {
	return apiclient.Do[domain.Response[domain.User]](ctx, s.client, "/user/profile", apiclient.Get(), true)
}

func (s *UserService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Response[domain.User], error) {
	return apiclient.Send[domain.Response[domain.User]](ctx, s.client, http.MethodPut, "/user/profile", update, true)
}

func (s *UserService) ChangePassword(ctx context.Context, change domain.PasswordChange) (*domain.Message, error) {
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPut, "/user/password", change, true)
}

func (s *UserService) Addresses(ctx context.Context) (*domain.Response[[]domain.Address], error) {
	return apiclient.Do[domain.Response[[]domain.Address]](ctx, s.client, "/user/addresses", apiclient.Get(), true)
}

func (s *UserService) AddAddress(ctx context.Context, addr domain.Address) (*domain.Response[domain.Address], error) {
	return apiclient.Send[domain.Response[domain.Address]](ctx, s.client, http.MethodPost, "/user/addresses", addr, true)
}

func (s *UserService) UpdateAddress(ctx context.Context, id string, addr domain.Address) (*domain.Response[domain.Address], error) {
	return apiclient.Send[domain.Response[domain.Address]](ctx, s.client, http.MethodPut, pathf("/user/addresses/%s", id), addr, true)
}

func (s *UserService) DeleteAddress(ctx context.Context, id string) (*domain.Message, error) {
	return apiclient.Do[domain.Message](ctx, s.client, pathf("/user/addresses/%s", id), apiclient.Delete(), true)
}

func (s *UserService) Dashboard(ctx context.Context) (*domain.Response[domain.Dashboard], error) {
	return apiclient.Do[domain.Response[domain.Dashboard]](ctx, s.client, "/user/dashboard", apiclient.Get(), true)
}
