package api

import (
	"net/http"

	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrOutOfStock is reported when a reservation could not be admitted.
var ErrOutOfStock = errs.New("equipment out of stock")

func abortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrEquipmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Equipment not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
