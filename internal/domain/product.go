package domain

import (
	"context"
)

// AllCategories is the sentinel category label meaning "no category filter".
const AllCategories = "all_categories"

type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"imageUrl"`
	SupplierID     int      `json:"supplierId"`
	WholesalePrice float64  `json:"wholesalePrice"`
	Price          float64  `json:"price"`
	Categories     []string `json:"categories"`
}

// HasCategory reports whether the product carries the given category label.
// Matching is exact and case-sensitive.
func (p Product) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductFilter controls display ordering and filtering of product listings.
// It never affects cart math.
type ProductFilter struct {
	Category  string // empty or AllCategories = no filter
	SortField string // id, name, price, supplierId, wholesalePrice
	SortOrder string // asc, desc
}

// --- Interfaces ---

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)

	// Admin Management. Read-only catalog sources return ErrReadOnlyCatalog.
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id int) error
}
