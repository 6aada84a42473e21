package queries

//go:generate mockgen -source=basket.go -destination=../../../tests/mock/queries/basket_mock.go -package=mock_queries

import (
	"context"

	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/usecase/shared"
)

type BasketQueries interface {
	// ListBasket returns a consistent snapshot in insertion order.
	ListBasket(ctx context.Context) ([]BasketItemView, error)
}

type basketQueriesImpl struct {
	uow  shared.UnitOfWork
	calc pricing.PriceCalculator
}

func NewBasketQueries(uow shared.UnitOfWork, calc pricing.PriceCalculator) BasketQueries {
	return &basketQueriesImpl{uow: uow, calc: calc}
}

func (q *basketQueriesImpl) ListBasket(ctx context.Context) ([]BasketItemView, error) {
	views := []BasketItemView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Basket().List(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			views = append(views, BasketItemView{
				ID:        e.ID,
				Name:      e.Name,
				Days:      e.Days,
				Class:     e.Class.String(),
				Price:     q.calc.Price(e.Class, e.Days),
				CreatedAt: e.CreatedAt,
				ExpiresAt: e.ExpiresAt(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return views, nil
}
