package middleware

import (
	"net/http"

	"shopcart-backend/internal/domain"
	"shopcart-backend/pkg/utils"
)

// AdminMiddleware ensures the authenticated caller carries the admin role.
// MUST be used AFTER AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(domain.ClaimsContextKey).(*utils.Claims)
		if !ok || claims == nil {
			http.Error(w, "Unauthorized: No claims found in context", http.StatusUnauthorized)
			return
		}

		if claims.Role != "admin" {
			http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
