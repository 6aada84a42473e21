package queries

//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/queries/equipment_mock.go -package=mock_queries

import (
	"context"

	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/usecase/shared"
)

type EquipmentQueries interface {
	// ListEquipment returns every catalog item sorted by name.
	ListEquipment(ctx context.Context) ([]EquipmentView, error)
}

type equipmentQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEquipmentQueries(uow shared.UnitOfWork, clk clock.Clock) EquipmentQueries {
	return &equipmentQueriesImpl{uow: uow, clock: clk}
}

// Expired holds are not counted but are left for the next admission to reap.
func (q *equipmentQueriesImpl) ListEquipment(ctx context.Context) ([]EquipmentView, error) {
	views := []EquipmentView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Catalog().List(ctx)
		if err != nil {
			return err
		}
		now := q.clock.Now()
		for _, item := range items {
			rentals, err := tx.Rentals().List(ctx, item.Name())
			if err != nil {
				return err
			}
			available := equipment.AvailableUnits(item.Stock(), equipment.CountActive(rentals, now))
			views = append(views, EquipmentView{
				Name:       item.Name(),
				Class:      item.Class().String(),
				Stock:      item.Stock(),
				Available:  available,
				OutOfStock: available == 0,
			})
		}
		return nil
	})
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return views, nil
}
