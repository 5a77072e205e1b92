package usecase

import (
	"context"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"
)

type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Response[domain.AuthResult], error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Response[domain.AuthResult], error)
	VerifyOTP(ctx context.Context, email, otp string) (*domain.Response[domain.AuthResult], error)
	Logout(ctx context.Context) (*domain.Message, error)
}

// AuthUsecase describes the visitor's sign-in state from the stored token.
type AuthUsecase struct {
	auth   Authenticator
	tokens domain.TokenStore
	now    func() time.Time
}

func NewAuthUsecase(auth Authenticator, tokens domain.TokenStore) *AuthUsecase {
	return &AuthUsecase{auth: auth, tokens: tokens, now: time.Now}
}

func (u *AuthUsecase) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	return signedIn(u.auth.Login(ctx, creds))
}

// Register creates the account. The API signs the new user in unless it asks
// for an OTP first, in which case no token is stored yet.
func (u *AuthUsecase) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	return signedIn(u.auth.Register(ctx, reg))
}

func (u *AuthUsecase) VerifyOTP(ctx context.Context, email, otp string) (*domain.User, error) {
	return signedIn(u.auth.VerifyOTP(ctx, email, otp))
}

func signedIn(resp *domain.Response[domain.AuthResult], err error) (*domain.User, error) {
	if err != nil {
		return nil, err
	}
	result, err := resp.Result()
	if err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (u *AuthUsecase) Logout(ctx context.Context) error {
	_, err := u.auth.Logout(ctx)
	return err
}

// Session reports whether a token is stored. Claims are read without signature
// checks and only for display. An expired token is cleared.
func (u *AuthUsecase) Session(ctx context.Context) domain.Session {
	token, ok := u.tokens.GetToken(ctx)
	if !ok {
		return domain.Session{}
	}

	claims, err := utils.DecodeClaims(token)
	if err != nil {
		// Opaque tokens are still valid bearer tokens
		return domain.Session{Authenticated: true}
	}
	if claims.Expired(u.now()) {
		if err := u.tokens.ClearToken(ctx); err != nil {
			logger.WithContext(ctx).Warn().Err(err).Msg("Failed to clear expired token")
		}
		return domain.Session{}
	}
	return domain.Session{
		Authenticated: true,
		UserID:        claims.UserID,
		Email:         claims.Email,
		ExpiresAt:     claims.ExpiresAt,
	}
}
