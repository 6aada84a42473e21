package repository

import (
	"context"

	"equipment-rental/internal/domain/equipment"
)

const (
	upsertEquipmentSQL = `
INSERT INTO equipment (name, class, stock) VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET class = EXCLUDED.class, stock = EXCLUDED.stock`
	getEquipmentSQL  = `SELECT class, stock FROM equipment WHERE name = $1`
	lockEquipmentSQL = `SELECT class, stock FROM equipment WHERE name = $1 FOR UPDATE`
	listEquipmentSQL = `SELECT name, class, stock FROM equipment ORDER BY name`
)

type CatalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Put(ctx context.Context, item *equipment.Item) error {
	if _, err := r.db.Exec(ctx, upsertEquipmentSQL, item.Name(), item.Class().String(), item.Stock()); err != nil {
		return wrapPgErr("failed to upsert equipment", err)
	}
	return nil
}

func (r *CatalogRepository) Get(ctx context.Context, name string) (*equipment.Item, error) {
	return r.scanOne(ctx, getEquipmentSQL, name)
}

func (r *CatalogRepository) Lock(ctx context.Context, name string) (*equipment.Item, error) {
	return r.scanOne(ctx, lockEquipmentSQL, name)
}

func (r *CatalogRepository) List(ctx context.Context) ([]*equipment.Item, error) {
	rows, err := r.db.Query(ctx, listEquipmentSQL)
	if err != nil {
		return nil, wrapPgErr("failed to list equipment", err)
	}
	defer rows.Close()

	var items []*equipment.Item
	for rows.Next() {
		var (
			name, class string
			stock       int32
		)
		if err := rows.Scan(&name, &class, &stock); err != nil {
			return nil, wrapPgErr("failed to scan equipment", err)
		}
		items = append(items, equipment.ReconstructItem(name, equipment.Class(class), int(stock)))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to list equipment", err)
	}
	return items, nil
}

func (r *CatalogRepository) scanOne(ctx context.Context, query, name string) (*equipment.Item, error) {
	var (
		class string
		stock int32
	)
	if err := r.db.QueryRow(ctx, query, name).Scan(&class, &stock); err != nil {
		return nil, wrapPgErr("failed to get equipment", err)
	}
	return equipment.ReconstructItem(name, equipment.Class(class), int(stock)), nil
}
