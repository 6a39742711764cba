package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart-backend/config"
	"shopcart-backend/internal/delivery/http/middleware"
	memcache "shopcart-backend/internal/infrastructure/cache"
	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/utils"
)

func newAdminTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	utils.SetSecret("test-secret")

	mem := memcache.NewMemoryCache(time.Minute, time.Minute)
	catalogUC := usecase.NewCatalogUsecase(&fakeProductRepo{products: testProducts()}, mem, &config.Config{CacheProductTTL: time.Minute})
	authUC := usecase.NewAuthUsecase("admin@example.com", "hunter2", time.Hour)

	authHandler := NewAuthHandler(authUC, time.Hour)
	adminHandler := NewAdminCatalogHandler(catalogUC)

	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/admin/products", adminOnly(adminHandler.CreateProduct))
	mux.Handle("DELETE /api/v1/admin/products/{id}", adminOnly(adminHandler.DeleteProduct))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAdminLoginAndProtectedRoute(t *testing.T) {
	srv := newAdminTestServer(t)

	// bad credentials
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// no token
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/products",
		`{"name":"Mouse","price":12,"categories":["accessory"]}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// login
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login",
		`{"email":"admin@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)

	// authorized create
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/products",
		jsonBody(`{"name":"Mouse","price":12,"categories":["accessory"]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	createResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer createResp.Body.Close()
	assert.Equal(t, http.StatusCreated, createResp.StatusCode)
}
