package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/pricing"
	"shopcart-backend/pkg/logger"
)

// CartUsecase owns session carts. The cart itself is just the (selection,
// applied coupon) pair; every summary is recomputed from the latest catalog
// snapshot, never patched incrementally.
type CartUsecase struct {
	store       domain.CartStore
	catalog     *CatalogUsecase
	couponRepo  domain.CouponRepository
	maxQuantity int
}

func NewCartUsecase(store domain.CartStore, catalog *CatalogUsecase, couponRepo domain.CouponRepository, maxQuantity int) *CartUsecase {
	return &CartUsecase{
		store:       store,
		catalog:     catalog,
		couponRepo:  couponRepo,
		maxQuantity: maxQuantity,
	}
}

func (u *CartUsecase) CreateCart(ctx context.Context) (*domain.Cart, error) {
	now := time.Now()
	cart := &domain.Cart{
		ID:        uuid.NewString(),
		Selection: domain.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.store.Put(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	logger.Debug().Str("cart_id", cart.ID).Msg("Cart created")
	return cart, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	return u.store.Get(ctx, id)
}

// SetItem inserts or replaces a line in the cart. Adding a product starts at
// quantity 1 on the UI side; the engine only ever sees quantities >= 1.
func (u *CartUsecase) SetItem(ctx context.Context, cartID string, productID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if quantity > u.maxQuantity {
		return nil, fmt.Errorf("quantity exceeds maximum of %d", u.maxQuantity)
	}

	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	// Reject ids that are not in the catalog at all; ids that drop out of a
	// later snapshot are tolerated and silently ignored by the summary.
	if _, err := u.catalog.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	cart.Selection.Set(productID, quantity)
	cart.UpdatedAt = time.Now()
	if err := u.store.Put(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// RemoveItem deletes a line. Removing an id that is not in the cart is a
// no-op, matching the selection contract.
func (u *CartUsecase) RemoveItem(ctx context.Context, cartID string, productID int) (*domain.Cart, error) {
	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.Selection.Remove(productID)
	cart.UpdatedAt = time.Now()
	if err := u.store.Put(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// ApplyCoupon looks a code up in the coupon table. On an unknown code the
// previously applied coupon stays untouched and the caller surfaces the
// error; a matching coupon replaces whatever was applied before.
func (u *CartUsecase) ApplyCoupon(ctx context.Context, cartID, code string) (*domain.Cart, error) {
	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	coupon, err := u.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cart.AppliedCoupon = coupon
	cart.UpdatedAt = time.Now()
	if err := u.store.Put(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	logger.Debug().Str("cart_id", cartID).Str("coupon", code).Msg("Coupon applied")
	return cart, nil
}

func (u *CartUsecase) RemoveCoupon(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.AppliedCoupon = nil
	cart.UpdatedAt = time.Now()
	if err := u.store.Put(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// Summary recomputes the cart summary from scratch against the current
// catalog snapshot.
func (u *CartUsecase) Summary(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	snapshot, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := pricing.Summarize(snapshot, cart.Selection, cart.AppliedCoupon)
	return &summary, nil
}
