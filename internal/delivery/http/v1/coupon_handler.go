package v1

import (
	"net/http"

	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/utils"
)

type CouponHandler struct {
	couponUC *usecase.CouponUsecase
}

func NewCouponHandler(uc *usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{couponUC: uc}
}

// ListCoupons returns the available coupon table for the storefront's
// coupon hint list.
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponUC.ListCoupons(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, coupons)
}
