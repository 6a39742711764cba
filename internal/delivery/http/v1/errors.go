package v1

import (
	"errors"
	"net/http"

	"shopcart-backend/internal/domain"
	"shopcart-backend/pkg/utils"
)

// writeDomainError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with the raw message.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCouponNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrReadOnlyCatalog):
		utils.WriteError(w, http.StatusForbidden, err.Error())
	default:
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
