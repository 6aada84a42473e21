package equipment

import (
	"time"

	"github.com/google/uuid"
)

// Rental is one unit held for a reservation until ExpiresAt.
type Rental struct {
	ReservationID uuid.UUID
	ExpiresAt     time.Time
}

// IsExpired treats the expiration instant itself as already expired.
func (r Rental) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

func CountActive(rentals []Rental, now time.Time) int {
	n := 0
	for _, r := range rentals {
		if !r.IsExpired(now) {
			n++
		}
	}
	return n
}
