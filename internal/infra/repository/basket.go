package repository

import (
	"context"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/infra/repository/converter"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	listBasketSQL   = `SELECT id, name, days, class, created_at FROM basket_entries ORDER BY seq`
	getBasketSQL    = `SELECT id, name, days, class, created_at FROM basket_entries WHERE id = $1`
	insertBasketSQL = `INSERT INTO basket_entries (id, name, days, class, created_at) VALUES ($1, $2, $3, $4, $5)`
	deleteBasketSQL = `DELETE FROM basket_entries WHERE id = $1`
	clearBasketSQL  = `DELETE FROM basket_entries`
)

type BasketRepository struct {
	db DBTX
}

func NewBasketRepository(db DBTX) *BasketRepository {
	return &BasketRepository{db: db}
}

func (r *BasketRepository) List(ctx context.Context) ([]basket.Entry, error) {
	rows, err := r.db.Query(ctx, listBasketSQL)
	if err != nil {
		return nil, wrapPgErr("failed to list basket", err)
	}
	defer rows.Close()

	out := []basket.Entry{}
	for rows.Next() {
		var row converter.EntryRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, wrapPgErr("failed to scan basket entry", err)
		}
		out = append(out, converter.EntryFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to list basket", err)
	}
	return out, nil
}

func (r *BasketRepository) Get(ctx context.Context, id uuid.UUID) (basket.Entry, error) {
	var row converter.EntryRow
	if err := r.db.QueryRow(ctx, getBasketSQL, pgconv.UUIDToPgtype(id)).Scan(row.ScanTargets()...); err != nil {
		return basket.Entry{}, wrapPgErr("failed to get basket entry", err)
	}
	return converter.EntryFromRow(row), nil
}

func (r *BasketRepository) Add(ctx context.Context, entry basket.Entry) error {
	row := converter.EntryToRow(entry)
	if _, err := r.db.Exec(ctx, insertBasketSQL, row.ID, row.Name, row.Days, row.Class, row.CreatedAt); err != nil {
		return wrapPgErr("failed to insert basket entry", err)
	}
	return nil
}

func (r *BasketRepository) Remove(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBasketSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapPgErr("failed to delete basket entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("basket entry not found")
	}
	return nil
}

func (r *BasketRepository) Clear(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, clearBasketSQL)
	if err != nil {
		return 0, wrapPgErr("failed to clear basket", err)
	}
	return int(tag.RowsAffected()), nil
}
