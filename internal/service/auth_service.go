package service

import (
	"context"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"
)

// AuthService signs visitors in and out. The token returned by the API is stored
// through the client's TokenStore and later attached verbatim.
type AuthService struct {
	client *apiclient.Client
	tokens domain.TokenStore
}

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client, tokens: client.Tokens()}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Response[domain.AuthResult], error) {
	resp, err := apiclient.Send[domain.Response[domain.AuthResult]](ctx, s.client, http.MethodPost, "/login", creds, false)
	if err != nil {
		return nil, err
	}
	if err := s.storeToken(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.Response[domain.AuthResult], error) {
	resp, err := apiclient.Send[domain.Response[domain.AuthResult]](ctx, s.client, http.MethodPost, "/register", reg, false)
	if err != nil {
		return nil, err
	}
	if err := s.storeToken(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (*domain.Response[domain.AuthResult], error) {
	body := map[string]string{"email": email, "otp": otp}
	resp, err := apiclient.Send[domain.Response[domain.AuthResult]](ctx, s.client, http.MethodPost, "/verify-otp", body, false)
	if err != nil {
		return nil, err
	}
	if err := s.storeToken(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout always forgets the local token, even when the API call fails; the
// API error is still returned.
func (s *AuthService) Logout(ctx context.Context) (*domain.Message, error) {
	resp, err := apiclient.Do[domain.Message](ctx, s.client, "/logout", apiclient.Request{Method: http.MethodPost}, true)
	if s.tokens != nil {
		if clearErr := s.tokens.ClearToken(ctx); clearErr != nil {
			logger.WithContext(ctx).Warn().Err(clearErr).Msg("Failed to clear auth token")
		}
	}
	return resp, err
}

func (s *AuthService) Me(ctx context.Context) (*domain.Response[domain.User], error) {
	return apiclient.Do[domain.Response[domain.User]](ctx, s.client, "/me", apiclient.Get(), true)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*domain.Message, error) {
	body := map[string]string{"email": email}
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPost, "/forgot-password", body, false)
}

func (s *AuthService) ResetPassword(ctx context.Context, reset domain.PasswordReset) (*domain.Message, error) {
	return apiclient.Send[domain.Message](ctx, s.client, http.MethodPost, "/reset-password", reset, false)
}

func (s *AuthService) storeToken(ctx context.Context, resp *domain.Response[domain.AuthResult]) error {
	if s.tokens == nil || !resp.Success || resp.Data == nil || resp.Data.Token == "" {
		return nil
	}
	return s.tokens.SetToken(ctx, resp.Data.Token)
}
