// Package pricing derives cart summaries from a (catalog, selection, coupon)
// triple. Every function is pure: no state, no side effects, identical inputs
// always yield identical outputs. Money stays a plain float64 here; rounding
// happens only at presentation time.
package pricing

import (
	"shopcart-backend/internal/domain"
)

// Shipping tiers. Fixed business constants; changing them breaks documented
// boundary behavior (7/5/0 at 20/40).
const (
	shippingTierLow  = 20.0
	shippingTierHigh = 40.0
	shippingFeeLow   = 7.0
	shippingFeeHigh  = 5.0
)

// LineItemPrice computes the price of one line: unit price times quantity,
// minus the coupon discount when (and only when) the coupon's match condition
// holds for this product. FreeShipping and Undefined coupons never touch line
// prices.
func LineItemPrice(p domain.Product, quantity int, coupon *domain.Coupon) float64 {
	price := p.Price * float64(quantity)
	if coupon == nil {
		return price
	}
	switch coupon.Type {
	case domain.CouponSupplier:
		if coupon.SupplierID == p.SupplierID {
			price -= price * coupon.Discount
		}
	case domain.CouponCategory:
		if p.HasCategory(coupon.Category) {
			price -= price * coupon.Discount
		}
	case domain.CouponFreeShipping, domain.CouponUndefined:
		// no line-level effect
	}
	return price
}

// ProductsCost sums the per-line prices. An empty item list costs 0.
func ProductsCost(items []domain.LineItem, coupon *domain.Coupon) float64 {
	var total float64
	for _, item := range items {
		total += LineItemPrice(item.Product, item.Quantity, coupon)
	}
	return total
}

// ShippingCost derives the shipping fee from the discounted products cost.
// A FreeShipping coupon wins unconditionally, before the tiers.
func ShippingCost(cost float64, coupon *domain.Coupon) float64 {
	if coupon != nil && coupon.Type == domain.CouponFreeShipping {
		return 0
	}
	if cost < shippingTierLow {
		return shippingFeeLow
	}
	if cost < shippingTierHigh {
		return shippingFeeHigh
	}
	return 0
}

// Summarize derives the full cart summary. Selected ids missing from the
// catalog are dropped silently; stale selections are not an error. Line items
// keep the selection's insertion order.
func Summarize(catalog []domain.Product, selection domain.Selection, coupon *domain.Coupon) domain.CartSummary {
	byID := make(map[int]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	items := make([]domain.LineItem, 0, selection.Len())
	for _, entry := range selection.Entries() {
		product, ok := byID[entry.ProductID]
		if !ok {
			continue
		}
		items = append(items, domain.LineItem{Product: product, Quantity: entry.Quantity})
	}

	cost := ProductsCost(items, coupon)
	shipping := ShippingCost(cost, coupon)
	total := cost + shipping

	return domain.CartSummary{
		Items:        items,
		Total:        total,
		ShippingCost: shipping,
		Discount:     discount(items, coupon, total),
	}
}

// discount is the amount saved versus the no-coupon baseline. The baseline is
// a full re-run of the cost pipeline with the coupon forced to nil; keeping
// the double evaluation is what guarantees the invariant holds if coupon
// variants are ever added. Note a Supplier/Category coupon that pushes the
// products cost across a shipping tier also contributes that shipping delta
// to the reported discount.
func discount(items []domain.LineItem, coupon *domain.Coupon, total float64) float64 {
	if coupon == nil {
		return 0
	}
	baseCost := ProductsCost(items, nil)
	baseTotal := baseCost + ShippingCost(baseCost, nil)
	return baseTotal - total
}
