package usecase

import (
	"context"

	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/pricing"
)

// QuoteUsecase answers stateless cost calculations: the caller sends its
// selection and an optional coupon code and gets the derived totals back.
// Nothing is stored; this mirrors the cart summary math exactly.
type QuoteUsecase struct {
	catalog    *CatalogUsecase
	couponRepo domain.CouponRepository
}

func NewQuoteUsecase(catalog *CatalogUsecase, couponRepo domain.CouponRepository) *QuoteUsecase {
	return &QuoteUsecase{
		catalog:    catalog,
		couponRepo: couponRepo,
	}
}

type QuoteItem struct {
	ProductID    int `json:"productId"`
	UnitQuantity int `json:"unitQuantity"`
}

type QuoteResult struct {
	ItemsCost    float64 `json:"itemsCost"`
	ShippingCost float64 `json:"shippingCost"`
	Discount     float64 `json:"discount"`
	FinalCost    float64 `json:"finalCost"`
}

// CalculateCost derives the quote. An unknown coupon code fails the whole
// request; there is no partial quote. Item ids missing from the catalog are
// dropped silently, like everywhere else.
func (u *QuoteUsecase) CalculateCost(ctx context.Context, items []QuoteItem, couponCode string) (*QuoteResult, error) {
	var coupon *domain.Coupon
	if couponCode != "" {
		found, err := u.couponRepo.GetCouponByCode(ctx, couponCode)
		if err != nil {
			return nil, err
		}
		coupon = found
	}

	selection := domain.NewSelection()
	for _, item := range items {
		if item.UnitQuantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		selection.Set(item.ProductID, item.UnitQuantity)
	}

	snapshot, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := pricing.Summarize(snapshot, selection, coupon)
	return &QuoteResult{
		ItemsCost:    summary.Total - summary.ShippingCost,
		ShippingCost: summary.ShippingCost,
		Discount:     summary.Discount,
		FinalCost:    summary.Total,
	}, nil
}
