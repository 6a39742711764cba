package usecase

import (
	"context"
	"fmt"
	"sort"

	"shopcart-backend/config"
	"shopcart-backend/internal/domain"
	"shopcart-backend/pkg/cache"
)

const catalogCacheKey = "catalog:products"

type CatalogUsecase struct {
	repo  domain.ProductRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.ProductRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// Snapshot returns the full catalog, cached for CacheProductTTL. Pricing and
// listings both derive from this snapshot so they always agree.
func (u *CatalogUsecase) Snapshot(ctx context.Context) ([]domain.Product, error) {
	if val, found := u.cache.Get(catalogCacheKey); found {
		return val.([]domain.Product), nil
	}

	products, err := u.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	u.cache.Set(catalogCacheKey, products, u.cfg.CacheProductTTL)
	return products, nil
}

// ListProducts returns the catalog in display order. Sorting and filtering
// exist purely to choose row order on the product table; cart math never
// sees them.
func (u *CatalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	snapshot, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if filter.Category == "" || filter.Category == domain.AllCategories || p.HasCategory(filter.Category) {
			products = append(products, p)
		}
	}

	sortProducts(products, filter.SortField, filter.SortOrder)
	return products, nil
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return u.repo.GetProductByID(ctx, id)
}

// Categories returns the distinct category labels in first-seen order, with
// the "all categories" sentinel prepended for the filter dropdown.
func (u *CatalogUsecase) Categories(ctx context.Context) ([]string, error) {
	snapshot, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	categories := []string{domain.AllCategories}
	seen := make(map[string]bool)
	for _, p := range snapshot {
		for _, c := range p.Categories {
			if !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
	}
	return categories, nil
}

// --- Admin Management ---

func (u *CatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	if len(product.Categories) == 0 {
		return fmt.Errorf("product needs at least one category")
	}

	if err := u.repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	u.cache.Delete(catalogCacheKey)
	return nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	if err := u.repo.UpdateProduct(ctx, product); err != nil {
		return err
	}
	u.cache.Delete(catalogCacheKey)
	return nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int) error {
	if err := u.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	u.cache.Delete(catalogCacheKey)
	return nil
}

// sortProducts orders products in place by a display field. Unknown fields
// fall back to id order.
func sortProducts(products []domain.Product, field, order string) {
	var less func(a, b domain.Product) bool
	switch field {
	case "name":
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case "wholesalePrice":
		less = func(a, b domain.Product) bool { return a.WholesalePrice < b.WholesalePrice }
	case "supplierId":
		less = func(a, b domain.Product) bool { return a.SupplierID < b.SupplierID }
	default:
		less = func(a, b domain.Product) bool { return a.ID < b.ID }
	}

	sort.SliceStable(products, func(i, j int) bool {
		if order == "desc" {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
