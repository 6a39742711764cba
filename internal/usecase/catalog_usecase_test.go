package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart-backend/config"
	"shopcart-backend/internal/domain"
	memcache "shopcart-backend/internal/infrastructure/cache"
)

func newCatalogUsecase(products []domain.Product) (*CatalogUsecase, *stubProductRepo) {
	repo := &stubProductRepo{products: products}
	mem := memcache.NewMemoryCache(time.Minute, time.Minute)
	return NewCatalogUsecase(repo, mem, &config.Config{CacheProductTTL: time.Minute}), repo
}

func TestListProductsSorting(t *testing.T) {
	uc, _ := newCatalogUsecase(testCatalog())
	ctx := context.Background()

	byPrice, err := uc.ListProducts(ctx, domain.ProductFilter{SortField: "price", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 2}, productIDs(byPrice))

	byPriceDesc, err := uc.ListProducts(ctx, domain.ProductFilter{SortField: "price", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1}, productIDs(byPriceDesc))

	byName, err := uc.ListProducts(ctx, domain.ProductFilter{SortField: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1}, productIDs(byName))

	// unknown sort field falls back to id order
	fallback, err := uc.ListProducts(ctx, domain.ProductFilter{SortField: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, productIDs(fallback))
}

func TestListProductsCategoryFilter(t *testing.T) {
	uc, _ := newCatalogUsecase(testCatalog())
	ctx := context.Background()

	audio, err := uc.ListProducts(ctx, domain.ProductFilter{Category: "audio"})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, productIDs(audio))

	all, err := uc.ListProducts(ctx, domain.ProductFilter{Category: domain.AllCategories})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := uc.ListProducts(ctx, domain.ProductFilter{Category: "furniture"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCategoriesDistinctWithSentinelFirst(t *testing.T) {
	uc, _ := newCatalogUsecase(testCatalog())

	categories, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.AllCategories, "accessory", "electronic", "audio"}, categories)
}

func TestSnapshotIsCached(t *testing.T) {
	uc, repo := newCatalogUsecase(testCatalog())
	ctx := context.Background()

	first, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// repo changes are invisible until the cache entry expires or is invalidated
	repo.products = nil
	second, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestCreateProductValidatesAndInvalidatesCache(t *testing.T) {
	uc, _ := newCatalogUsecase(testCatalog())
	ctx := context.Background()

	_, err := uc.Snapshot(ctx) // prime cache
	require.NoError(t, err)

	err = uc.CreateProduct(ctx, &domain.Product{Name: "", Price: 1, Categories: []string{"x"}})
	assert.Error(t, err)

	err = uc.CreateProduct(ctx, &domain.Product{Name: "Mouse", Price: -1, Categories: []string{"x"}})
	assert.Error(t, err)

	err = uc.CreateProduct(ctx, &domain.Product{Name: "Mouse", Price: 12, Categories: []string{"accessory"}})
	require.NoError(t, err)

	snapshot, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot, 4)
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
