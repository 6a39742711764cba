// Package remote serves the catalog from an upstream products endpoint: one
// HTTP GET returning a JSON product array, fetched once at startup. There is
// no retry and no re-fetch; a failed load leaves the catalog empty and the
// caller decides what to surface.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/goccy/go-json"

	"shopcart-backend/internal/domain"
)

type CatalogRepository struct {
	url        string
	httpClient *http.Client

	mu       sync.RWMutex
	products []domain.Product
	byID     map[int]domain.Product
}

func NewCatalogRepository(url string) *CatalogRepository {
	return &CatalogRepository{
		url:        url,
		httpClient: http.DefaultClient,
		byID:       make(map[int]domain.Product),
	}
}

// Load fetches the catalog snapshot. Called once at startup; on error the
// repository keeps serving an empty catalog.
func (r *CatalogRepository) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog fetch failed: status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	r.mu.Lock()
	r.products = products
	r.byID = byID
	r.mu.Unlock()
	return nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// The upstream owns the catalog; admin mutations are not supported here.

func (r *CatalogRepository) CreateProduct(ctx context.Context, _ *domain.Product) error {
	return domain.ErrReadOnlyCatalog
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, _ *domain.Product) error {
	return domain.ErrReadOnlyCatalog
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, _ int) error {
	return domain.ErrReadOnlyCatalog
}
