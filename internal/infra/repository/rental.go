package repository

import (
	"context"
	"time"

	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listRentalsSQL = `
SELECT reservation_id, expires_at FROM rentals
WHERE equipment_name = $1
ORDER BY expires_at`
	insertRentalSQL        = `INSERT INTO rentals (reservation_id, equipment_name, expires_at) VALUES ($1, $2, $3)`
	deleteRentalSQL        = `DELETE FROM rentals WHERE equipment_name = $1 AND reservation_id = $2`
	deleteExpiredRentalSQL = `DELETE FROM rentals WHERE equipment_name = $1 AND expires_at <= $2`
)

type RentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) List(ctx context.Context, name string) ([]equipment.Rental, error) {
	rows, err := r.db.Query(ctx, listRentalsSQL, name)
	if err != nil {
		return nil, wrapPgErr("failed to list rentals", err)
	}
	defer rows.Close()

	out := []equipment.Rental{}
	for rows.Next() {
		var (
			id  pgtype.UUID
			exp pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &exp); err != nil {
			return nil, wrapPgErr("failed to scan rental", err)
		}
		rid, _ := pgconv.UUIDFromPgtype(id)
		out = append(out, equipment.Rental{ReservationID: rid, ExpiresAt: pgconv.TimeFromPgtype(exp)})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to list rentals", err)
	}
	return out, nil
}

func (r *RentalRepository) Add(ctx context.Context, name string, rental equipment.Rental) error {
	_, err := r.db.Exec(ctx, insertRentalSQL,
		pgconv.UUIDToPgtype(rental.ReservationID), name, pgconv.TimeToPgtype(rental.ExpiresAt))
	if err != nil {
		return wrapPgErr("failed to insert rental", err)
	}
	return nil
}

func (r *RentalRepository) Remove(ctx context.Context, name string, reservationID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteRentalSQL, name, pgconv.UUIDToPgtype(reservationID)); err != nil {
		return wrapPgErr("failed to delete rental", err)
	}
	return nil
}

func (r *RentalRepository) RemoveExpired(ctx context.Context, name string, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredRentalSQL, name, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, wrapPgErr("failed to delete expired rentals", err)
	}
	return int(tag.RowsAffected()), nil
}
