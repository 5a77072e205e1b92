package middleware

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/utils"
)

// RequireAuth rejects requests whose visitor holds no bearer token. The token is
// not validated here; the storefront API does that on every call.
func RequireAuth(tokens domain.TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := tokens.GetToken(r.Context()); !ok {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: please sign in")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
