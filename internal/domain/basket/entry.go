package basket

import (
	"errors"
	"time"

	"equipment-rental/internal/domain/equipment"

	"github.com/google/uuid"
)

const (
	MinRentalDays = 1
	MaxRentalDays = 365
)

var ErrInvalidEntry = errors.New("invalid basket entry")

// Entry is a pending reservation. Class is a snapshot taken at admission and
// stays authoritative for pricing even if the catalog changes later.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Days      int             `json:"days"`
	Class     equipment.Class `json:"class"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Factory struct {
	MinDays int
	MaxDays int
	NewID   func() uuid.UUID
}

func NewFactory(minDays, maxDays int) *Factory {
	return &Factory{
		MinDays: minDays,
		MaxDays: maxDays,
		NewID:   uuid.New,
	}
}

// ClampDays coerces out-of-range input instead of rejecting it.
func ClampDays(days, minDays, maxDays int) int {
	if days < minDays {
		return minDays
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

func (f *Factory) NewEntry(name string, days int, class equipment.Class, now time.Time) (Entry, error) {
	if name == "" || !class.IsValid() {
		return Entry{}, ErrInvalidEntry
	}
	return Entry{
		ID:        f.NewID(),
		Name:      name,
		Days:      ClampDays(days, f.MinDays, f.MaxDays),
		Class:     class,
		CreatedAt: now,
	}, nil
}

func (e Entry) ExpiresAt() time.Time {
	return e.CreatedAt.Add(time.Duration(e.Days) * 24 * time.Hour)
}

// Rental is the availability hold mirrored for this entry.
func (e Entry) Rental() equipment.Rental {
	return equipment.Rental{ReservationID: e.ID, ExpiresAt: e.ExpiresAt()}
}
