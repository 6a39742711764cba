package middleware

import (
	"context"
	"net/http"

	"shopcart-backend/internal/domain"
	"shopcart-backend/pkg/utils"
)

// AuthMiddleware validates the access token from the Authorization header or
// the accessToken cookie and puts the claims into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.ExtractClaims(r)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid or missing token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), domain.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
