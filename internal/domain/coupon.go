package domain

import (
	"context"
)

// CouponType enumerates the fixed coupon variants. The set is closed: these
// are business rules, not an extension point.
type CouponType int

const (
	CouponUndefined    CouponType = 0
	CouponFreeShipping CouponType = 1
	CouponSupplier     CouponType = 2
	CouponCategory     CouponType = 3
)

// Coupon is a tagged union over CouponType:
//   - FreeShipping: zeroes shipping, never touches line prices
//   - Supplier: Discount applies to lines whose product matches SupplierID
//   - Category: Discount applies to lines whose product carries Category
//   - Undefined: inert
//
// Discount is a fraction in [0,1]. At most one coupon is applied to a cart
// at a time.
type Coupon struct {
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Type        CouponType `json:"type"`
	Discount    float64    `json:"discount,omitempty"`
	Category    string     `json:"category,omitempty"`
	SupplierID  int        `json:"supplierId,omitempty"`
}

// --- Interfaces ---

type CouponRepository interface {
	// GetCouponByCode does an exact, case-sensitive match.
	// Returns ErrCouponNotFound when no coupon carries the code.
	GetCouponByCode(ctx context.Context, code string) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]Coupon, error)
}
