package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart-backend/config"
	"shopcart-backend/internal/domain"
	memcache "shopcart-backend/internal/infrastructure/cache"
	"shopcart-backend/internal/repository/cartstore"
	"shopcart-backend/internal/repository/static"
	"shopcart-backend/internal/usecase"
)

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.ID = 100 + len(f.products)
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, p *domain.Product) error { return nil }
func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id int) error            { return nil }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "USB Cable", SupplierID: 1, Price: 4, Categories: []string{"accessory"}},
		{ID: 2, Name: "Laptop", SupplierID: 2, Price: 1000, Categories: []string{"electronic"}},
		{ID: 4, Name: "Headphones", SupplierID: 1, Price: 30, Categories: []string{"accessory", "electronic", "audio"}},
	}
}

// newTestServer wires the public routes the same way main does.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mem := memcache.NewMemoryCache(time.Minute, time.Minute)
	catalogUC := usecase.NewCatalogUsecase(&fakeProductRepo{products: testProducts()}, mem, &config.Config{CacheProductTTL: time.Minute})
	couponRepo := static.NewCouponRepository()
	cartUC := usecase.NewCartUsecase(cartstore.NewCartStore(mem, time.Hour), catalogUC, couponRepo, 1000)
	quoteUC := usecase.NewQuoteUsecase(catalogUC, couponRepo)

	catalogHandler := NewCatalogHandler(catalogUC)
	cartHandler := NewCartHandler(cartUC)
	quoteHandler := NewQuoteHandler(quoteUC)
	couponHandler := NewCouponHandler(usecase.NewCouponUsecase(couponRepo))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/coupons", couponHandler.ListCoupons)
	mux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart)
	mux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart)
	mux.HandleFunc("GET /api/v1/carts/{id}/summary", cartHandler.GetSummary)
	mux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/carts/{id}/items/{productId}", cartHandler.SetItem)
	mux.HandleFunc("DELETE /api/v1/carts/{id}/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/v1/carts/{id}/coupon", cartHandler.ApplyCoupon)
	mux.HandleFunc("DELETE /api/v1/carts/{id}/coupon", cartHandler.RemoveCoupon)
	mux.HandleFunc("POST /api/v1/cart/calculate", quoteHandler.CalculateCost)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeBody(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func createCart(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/carts", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCartEndpoints(t *testing.T) {
	srv := newTestServer(t)
	cartID := createCart(t, srv)

	// add defaults to quantity 1
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/carts/"+cartID+"/items", `{"productId":4}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ := body["items"].([]interface{})
	require.Len(t, items, 1)
	line, _ := items[0].(map[string]interface{})
	assert.InDelta(t, 1, line["quantity"].(float64), 1e-9)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/carts/"+cartID+"/items/4", `{"quantity":2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// invalid quantity
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/carts/"+cartID+"/items/4", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unknown product
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/carts/"+cartID+"/items/999", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// unknown cart
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/nope/summary", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, summary := doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/"+cartID+"/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 60.0, summary["total"].(float64), 1e-9) // 60 in products, free shipping tier
	assert.Equal(t, "Free", summary["shippingCostText"])
}

func TestCartSummaryDisplayFields(t *testing.T) {
	srv := newTestServer(t)
	cartID := createCart(t, srv)

	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/api/v1/carts/"+cartID+"/items/1", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, summary := doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/"+cartID+"/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 8 in products, below the first tier, shipping 7
	assert.InDelta(t, 15.0, summary["total"].(float64), 1e-9)
	assert.Equal(t, "$15.00", summary["totalText"])
	assert.InDelta(t, 7.0, summary["shippingCost"].(float64), 1e-9)
	assert.Equal(t, "$7.00", summary["shippingCostText"])
	assert.Equal(t, "$0.00", summary["discountText"])
}

func TestCouponEndpoints(t *testing.T) {
	srv := newTestServer(t)
	cartID := createCart(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/carts/"+cartID+"/coupon", `{"code":"APPL10"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	applied, _ := body["appliedCoupon"].(map[string]interface{})
	require.NotNil(t, applied)
	assert.Equal(t, "APPL10", applied["code"])

	// unknown code is a 404 and keeps APPL10 applied
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/carts/"+cartID+"/coupon", `{"code":"appl10"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/"+cartID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	applied, _ = body["appliedCoupon"].(map[string]interface{})
	require.NotNil(t, applied)
	assert.Equal(t, "APPL10", applied["code"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/carts/"+cartID+"/coupon", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["appliedCoupon"])
}

func TestCalculateCostEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/calculate",
		`{"items":[{"productId":1,"unitQuantity":2},{"productId":4,"unitQuantity":1}],"couponCode":""}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.InDelta(t, 38.0, body["itemsCost"].(float64), 1e-9)
	assert.InDelta(t, 5.0, body["shippingCost"].(float64), 1e-9)
	assert.InDelta(t, 43.0, body["finalCost"].(float64), 1e-9)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/calculate",
		`{"items":[{"productId":1,"unitQuantity":1}],"couponCode":"NOPE"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/calculate",
		`{"items":[{"productId":1,"unitQuantity":0}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
