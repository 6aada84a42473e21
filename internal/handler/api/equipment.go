package api

import (
	"net/http"

	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	q queries.EquipmentQueries
}

func NewEquipmentHandler(q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{q: q}
}

// @Summary List equipment
// @Description List catalog items with stock and currently available units
// @Tags equipment
// @Produce json
// @Success 200 {array} resdto.EquipmentResponse
// @Failure 500 {object} httperr.Response
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	items, err := h.q.ListEquipment(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list equipment")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentList(items))
}
