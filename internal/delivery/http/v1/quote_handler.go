package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/utils"
)

type QuoteHandler struct {
	quoteUC *usecase.QuoteUsecase
}

func NewQuoteHandler(uc *usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{quoteUC: uc}
}

// CalculateCost answers a stateless price calculation for an ad-hoc
// selection and optional coupon code.
func (h *QuoteHandler) CalculateCost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items      []usecase.QuoteItem `json:"items"`
		CouponCode string              `json:"couponCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result, err := h.quoteUC.CalculateCost(r.Context(), req.Items, req.CouponCode)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
