package v1

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/logger"
	"shopcart-backend/pkg/utils"
)

type AuthHandler struct {
	authUC      *usecase.AuthUsecase
	tokenExpiry time.Duration
}

func NewAuthHandler(authUC *usecase.AuthUsecase, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{authUC: authUC, tokenExpiry: tokenExpiry}
}

// Login authenticates the admin against the configured credentials and
// returns an access token, also set as an HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn().Str("email", req.Email).Msg("Admin login failed")
		utils.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.tokenExpiry.Seconds()),
	})

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"accessToken": token,
	})
}

// Logout clears the access token cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: "accessToken", MaxAge: -1, Path: "/"})
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
