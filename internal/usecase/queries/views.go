package queries

import (
	"time"

	"equipment-rental/internal/domain/pricing"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BasketItemView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Days      int       `json:"days"`
	Class     string    `json:"class"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type EquipmentView struct {
	Name       string `json:"name"`
	Class      string `json:"class"`
	Stock      int    `json:"stock"`
	Available  int    `json:"available"`
	OutOfStock bool   `json:"outOfStock"`
}

type InvoiceView struct {
	OrderID uuid.UUID       `json:"orderId"`
	Invoice pricing.Invoice `json:"invoice"`
}
