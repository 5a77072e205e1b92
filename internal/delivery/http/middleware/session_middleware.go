package middleware

import (
	"net/http"

	"hometex-storefront/internal/infrastructure/state"
	"hometex-storefront/internal/session"
)

// Session gives every request a cookie-backed state store.
func Session(opts state.CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := state.NewCookieStore(w, r, opts)
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), store)))
		})
	}
}
