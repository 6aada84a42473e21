package response

import (
	"time"

	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"
)

type BasketItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Days      int       `json:"days"`
	Class     string    `json:"class"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromBasketItems(items []queries.BasketItemView) []BasketItemResponse {
	res := make([]BasketItemResponse, 0, len(items))
	if len(items) == 0 {
		return res
	}
	copyInto(&res, &items)
	return res
}

type ReserveResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Days  int    `json:"days"`
	Class string `json:"class"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		ID:    r.ID.String(),
		Name:  r.Name,
		Days:  r.Days,
		Class: r.Class.String(),
	}
}

type ClearBasketResponse struct {
	Removed int `json:"removed"`
}

type CloseBasketResponse struct {
	OrderID string `json:"orderId"`
}
