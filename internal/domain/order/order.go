package order

import (
	"time"

	"equipment-rental/internal/domain/basket"

	"github.com/google/uuid"
)

// Order is immutable once created; entries keep the basket's iteration order.
type Order struct {
	id        uuid.UUID
	entries   []basket.Entry
	createdAt time.Time
}

func NewOrder(id uuid.UUID, entries []basket.Entry, createdAt time.Time) *Order {
	copied := make([]basket.Entry, len(entries))
	copy(copied, entries)
	return &Order{id: id, entries: copied, createdAt: createdAt}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Len() int             { return len(o.entries) }

// Entries returns a copy so callers cannot mutate the stored order.
func (o *Order) Entries() []basket.Entry {
	copied := make([]basket.Entry, len(o.entries))
	copy(copied, o.entries)
	return copied
}
