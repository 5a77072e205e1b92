// Package usecase holds the visitor state derived from the storefront API: cart,
// wishlist, recently viewed products, offers and location. State is read from and
// written to the domain.StateStore carried by the request context.
package usecase

import (
	"context"

	"hometex-storefront/internal/domain"
)

// authenticated reports whether a bearer token is available for ctx.
func authenticated(ctx context.Context, tokens domain.TokenStore) bool {
	if tokens == nil {
		return false
	}
	_, ok := tokens.GetToken(ctx)
	return ok
}
