package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"shopcart-backend/pkg/utils"
)

// AuthUsecase issues admin tokens. There is a single admin identity coming
// from config; customer-facing routes need no authentication at all.
type AuthUsecase struct {
	adminEmail    string
	adminPassword string
	tokenExpiry   time.Duration
}

func NewAuthUsecase(adminEmail, adminPassword string, tokenExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		tokenExpiry:   tokenExpiry,
	}
}

// Login validates the admin credentials and returns a signed access token.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if u.adminEmail == "" || u.adminPassword == "" {
		return "", fmt.Errorf("admin login is not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.adminPassword)) == 1
	if !emailOK || !passwordOK {
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateJWT(email, "admin", u.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
