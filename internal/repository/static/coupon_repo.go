// Package static holds the fixed coupon table. Coupons are business
// constants, not database rows; lookup is an exact, case-sensitive match.
package static

import (
	"context"

	"shopcart-backend/internal/domain"
)

var availableCoupons = []domain.Coupon{
	{
		Code:        "freeShipping!",
		Description: "Free Shipping",
		Type:        domain.CouponFreeShipping,
	},
	{
		Code:        "APPL10",
		Description: "10% on all Apple Products",
		Type:        domain.CouponSupplier,
		Discount:    0.1,
		SupplierID:  1,
	},
	{
		Code:        "AUDIO15",
		Description: "15% on all Audio Products",
		Type:        domain.CouponCategory,
		Discount:    0.15,
		Category:    "audio",
	},
	{
		Code:        "ELEC25",
		Description: "25% on all Electronic Products",
		Type:        domain.CouponCategory,
		Discount:    0.25,
		Category:    "electronic",
	},
}

type couponRepository struct {
	coupons []domain.Coupon
}

func NewCouponRepository() domain.CouponRepository {
	return &couponRepository{coupons: availableCoupons}
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	for _, c := range r.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, domain.ErrCouponNotFound
}

func (r *couponRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	out := make([]domain.Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out, nil
}
