package usecase

import (
	"context"

	"shopcart-backend/internal/domain"
)

type CouponUsecase struct {
	couponRepo domain.CouponRepository
}

func NewCouponUsecase(couponRepo domain.CouponRepository) *CouponUsecase {
	return &CouponUsecase{couponRepo: couponRepo}
}

// ListCoupons returns the available coupon table for display.
func (u *CouponUsecase) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return u.couponRepo.ListCoupons(ctx)
}

// GetCoupon resolves a code with an exact, case-sensitive match.
func (u *CouponUsecase) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	return u.couponRepo.GetCouponByCode(ctx, code)
}
