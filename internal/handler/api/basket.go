package api

import (
	"net/http"

	reqdto "equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BasketHandler struct {
	cmds   commands.BasketCommands
	orders commands.OrderCommands
	q      queries.BasketQueries
}

func NewBasketHandler(cmds commands.BasketCommands, orders commands.OrderCommands, q queries.BasketQueries) *BasketHandler {
	return &BasketHandler{cmds: cmds, orders: orders, q: q}
}

// @Summary List basket
// @Description List basket entries in insertion order with their current price
// @Tags basket
// @Produce json
// @Success 200 {array} resdto.BasketItemResponse
// @Failure 500 {object} httperr.Response
// @Router /basket [get]
func (h *BasketHandler) List(c *gin.Context) {
	items, err := h.q.ListBasket(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list basket")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBasketItems(items))
}

// @Summary Reserve equipment
// @Description Hold one unit of the named equipment for the given number of days
// @Tags basket
// @Produce json
// @Param name path string true "Equipment name"
// @Param days path int true "Rental days (clamped to the allowed range)"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /basket/{name}/{days} [put]
func (h *BasketHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.Name, req.Days)
	if err != nil {
		abortWithUsecaseError(c, err, "Reservation failed")
		return
	}
	if !result.Admitted {
		httperr.AbortWithError(c, http.StatusConflict, ErrOutOfStock, "Equipment out of stock", gin.H{"name": req.Name})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Remove reservation
// @Tags basket
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /basket/{id} [delete]
func (h *BasketHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Remove failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear basket
// @Description Remove every reservation, one transaction per entry
// @Tags basket
// @Success 204 "No Content"
// @Failure 500 {object} httperr.Response
// @Router /basket [delete]
func (h *BasketHandler) Clear(c *gin.Context) {
	if _, err := h.cmds.Clear(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, "Clear failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Close basket
// @Description Finalize the basket into a new order
// @Tags basket
// @Produce json
// @Success 201 {object} resdto.CloseBasketResponse
// @Failure 500 {object} httperr.Response
// @Router /basket/close [post]
func (h *BasketHandler) Close(c *gin.Context) {
	id, err := h.orders.CloseBasket(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Close failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CloseBasketResponse{OrderID: id.String()})
}
