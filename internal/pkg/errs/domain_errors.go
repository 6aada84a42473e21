package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Marker for every lookup miss (equipment, reservation, order)
	ErrNotFound = errors.New("not found")

	// Catalog errors
	ErrEquipmentNotFound = errors.New("equipment not found")

	// Basket errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
