package v1

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/utils"
)

type CartHandler struct {
	cartUC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: uc}
}

// summaryResponse mirrors domain.CartSummary with the display strings the
// storefront shows next to the raw numbers.
type summaryResponse struct {
	Items            []domain.LineItem `json:"items"`
	Total            float64           `json:"total"`
	TotalText        string            `json:"totalText"`
	Discount         float64           `json:"discount"`
	DiscountText     string            `json:"discountText"`
	ShippingCost     float64           `json:"shippingCost"`
	ShippingCostText string            `json:"shippingCostText"`
}

func newSummaryResponse(s *domain.CartSummary) summaryResponse {
	return summaryResponse{
		Items:            s.Items,
		Total:            s.Total,
		TotalText:        utils.FormatMoney(s.Total),
		Discount:         s.Discount,
		DiscountText:     utils.FormatMoney(s.Discount),
		ShippingCost:     s.ShippingCost,
		ShippingCostText: utils.FormatShippingCost(s.ShippingCost),
	}
}

func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUC.CreateCart(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, cart)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUC.GetCart(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// GetSummary recomputes and returns the cart totals.
func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartUC.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newSummaryResponse(summary))
}

// AddItem puts a product into the cart. Quantity defaults to 1, matching the
// storefront's add-to-cart button; an explicit quantity replaces any
// existing line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartUC.SetItem(r.Context(), r.PathValue("id"), req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// SetItem inserts or replaces a cart line.
func (h *CartHandler) SetItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := h.cartUC.SetItem(r.Context(), r.PathValue("id"), productID, req.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	cart, err := h.cartUC.RemoveItem(r.Context(), r.PathValue("id"), productID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// ApplyCoupon applies a coupon code to the cart. An unknown code returns 404
// and leaves any previously applied coupon in place.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := h.cartUC.ApplyCoupon(r.Context(), r.PathValue("id"), req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUC.RemoveCoupon(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}
