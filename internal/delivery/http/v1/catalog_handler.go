package v1

import (
	"net/http"
	"strconv"

	"shopcart-backend/internal/domain"
	"shopcart-backend/internal/usecase"
	"shopcart-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// ListProducts returns the catalog for the product table.
// Query params: category (filter), sort (name|price|wholesalePrice|supplierId),
// order (asc|desc), limit (optional row cap).
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.ProductFilter{
		Category:  query.Get("category"),
		SortField: query.Get("sort"),
		SortOrder: query.Get("order"),
	}

	products, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	total := len(products)
	if limit := utils.ParseInt(query.Get("limit"), 0); limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":  products,
		"total": total,
	})
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogUC.GetProductByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}

// GetCategories returns the filter dropdown entries: raw value plus the
// capitalized display label, sentinel first.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUC.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	type categoryEntry struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	entries := make([]categoryEntry, 0, len(categories))
	for _, c := range categories {
		entries = append(entries, categoryEntry{Value: c, Label: utils.FormatCategory(c)})
	}

	utils.WriteJSON(w, http.StatusOK, entries)
}
