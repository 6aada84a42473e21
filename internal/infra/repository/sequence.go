package repository

import (
	"context"

	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	getSequenceSQL = `SELECT order_id, version FROM order_sequence WHERE id = 1`
	// The WHERE clause makes the upsert a compare-and-swap on version.
	putSequenceSQL = `
INSERT INTO order_sequence (id, order_id, version) VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET order_id = EXCLUDED.order_id, version = EXCLUDED.version
WHERE order_sequence.version = $3`
)

type SequenceRepository struct {
	db DBTX
}

func NewSequenceRepository(db DBTX) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func (r *SequenceRepository) Get(ctx context.Context) (order.SequencePointer, bool, error) {
	var (
		id      pgtype.UUID
		version int64
	)
	err := r.db.QueryRow(ctx, getSequenceSQL).Scan(&id, &version)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return order.SequencePointer{}, false, nil
		}
		return order.SequencePointer{}, false, wrapPgErr("failed to get order sequence", err)
	}
	orderID, _ := pgconv.UUIDFromPgtype(id)
	return order.SequencePointer{OrderID: orderID, Version: version}, true, nil
}

func (r *SequenceRepository) Put(ctx context.Context, prev, next order.SequencePointer) error {
	tag, err := r.db.Exec(ctx, putSequenceSQL, pgconv.UUIDToPgtype(next.OrderID), next.Version, prev.Version)
	if err != nil {
		return wrapPgErr("failed to put order sequence", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "order sequence version changed", nil)
	}
	return nil
}
