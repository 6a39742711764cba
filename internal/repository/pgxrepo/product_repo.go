package pgxrepo

import (
	"context"
	"errors"
	"fmt"

	"shopcart-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = "id, name, image_url, supplier_id, wholesale_price, price, categories"

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM products ORDER BY id", productColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns), id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, image_url, supplier_id, wholesale_price, price, categories)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		p.Name, p.ImageURL, p.SupplierID, p.WholesalePrice, p.Price, p.Categories,
	)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $2, image_url = $3, supplier_id = $4, wholesale_price = $5, price = $6, categories = $7
		WHERE id = $1`,
		p.ID, p.Name, p.ImageURL, p.SupplierID, p.WholesalePrice, p.Price, p.Categories,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// scanProduct maps one row onto a domain.Product. categories is a text[]
// column; pgx scans it into []string directly.
func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.ImageURL, &p.SupplierID, &p.WholesalePrice, &p.Price, &p.Categories)
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
