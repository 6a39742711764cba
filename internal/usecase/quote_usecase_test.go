package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/repository/static"
)

func newQuoteUsecase(products []domain.Product) *QuoteUsecase {
	catalog, _ := newCatalogUsecase(products)
	return NewQuoteUsecase(catalog, static.NewCouponRepository())
}

func TestCalculateCostWithoutCoupon(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	result, err := uc.CalculateCost(context.Background(), []QuoteItem{
		{ProductID: 1, UnitQuantity: 2},
		{ProductID: 4, UnitQuantity: 1},
	}, "")
	require.NoError(t, err)

	assert.InDelta(t, 38.0, result.ItemsCost, 1e-9)
	assert.InDelta(t, 5.0, result.ShippingCost, 1e-9)
	assert.Zero(t, result.Discount)
	assert.InDelta(t, 43.0, result.FinalCost, 1e-9)
}

func TestCalculateCostWithSupplierCoupon(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	// both products belong to supplier 1, APPL10 takes 10% off each line
	result, err := uc.CalculateCost(context.Background(), []QuoteItem{
		{ProductID: 1, UnitQuantity: 5},
		{ProductID: 4, UnitQuantity: 2},
	}, "APPL10")
	require.NoError(t, err)

	assert.InDelta(t, 72.0, result.ItemsCost, 1e-9)
	assert.Zero(t, result.ShippingCost) // 72 >= 40, free tier
	assert.InDelta(t, 8.0, result.Discount, 1e-9)
	assert.InDelta(t, 72.0, result.FinalCost, 1e-9)
}

func TestCalculateCostUnknownCouponFailsWhole(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	result, err := uc.CalculateCost(context.Background(), []QuoteItem{
		{ProductID: 1, UnitQuantity: 1},
	}, "NOPE")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
	assert.Nil(t, result)
}

func TestCalculateCostRejectsInvalidQuantity(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	_, err := uc.CalculateCost(context.Background(), []QuoteItem{
		{ProductID: 1, UnitQuantity: 0},
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCalculateCostDropsUnknownProducts(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	result, err := uc.CalculateCost(context.Background(), []QuoteItem{
		{ProductID: 999, UnitQuantity: 3},
		{ProductID: 1, UnitQuantity: 1},
	}, "")
	require.NoError(t, err)

	assert.InDelta(t, 4.0, result.ItemsCost, 1e-9)
	assert.InDelta(t, 7.0, result.ShippingCost, 1e-9)
	assert.InDelta(t, 11.0, result.FinalCost, 1e-9)
}

func TestCalculateCostEmptySelection(t *testing.T) {
	uc := newQuoteUsecase(testCatalog())

	result, err := uc.CalculateCost(context.Background(), nil, "")
	require.NoError(t, err)

	assert.Zero(t, result.ItemsCost)
	assert.InDelta(t, 7.0, result.ShippingCost, 1e-9)
	assert.InDelta(t, 7.0, result.FinalCost, 1e-9)
}
