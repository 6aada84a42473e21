package shared

import (
	"context"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent multi-container snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Repositories returned by a Tx are bound to that transaction and must not
// be used after fn returns.
type Tx interface {
	Catalog() CatalogRepository
	Rentals() RentalRepository
	Basket() BasketRepository
	Orders() OrderRepository
	Sequence() SequenceRepository
}

type CatalogRepository interface {
	Put(ctx context.Context, item *equipment.Item) error
	Get(ctx context.Context, name string) (*equipment.Item, error)
	// Lock reads the item and holds it against concurrent admissions until commit.
	Lock(ctx context.Context, name string) (*equipment.Item, error)
	List(ctx context.Context) ([]*equipment.Item, error)
}

type RentalRepository interface {
	List(ctx context.Context, name string) ([]equipment.Rental, error)
	Add(ctx context.Context, name string, rental equipment.Rental) error
	// Remove is a no-op when the hold is already gone.
	Remove(ctx context.Context, name string, reservationID uuid.UUID) error
	RemoveExpired(ctx context.Context, name string, now time.Time) (int, error)
}

type BasketRepository interface {
	// List returns entries in insertion order.
	List(ctx context.Context) ([]basket.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (basket.Entry, error)
	Add(ctx context.Context, entry basket.Entry) error
	Remove(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) (int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
	Count(ctx context.Context) (int, error)
}

// SequenceRepository owns the single order pointer slot.
type SequenceRepository interface {
	Get(ctx context.Context) (order.SequencePointer, bool, error)
	// Put replaces the pointer only if the stored version still equals
	// prev.Version (zero when no pointer exists yet).
	Put(ctx context.Context, prev, next order.SequencePointer) error
}
