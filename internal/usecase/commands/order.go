package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=mock_commands

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/pkg/tracing"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type OrderCommands interface {
	// PeekOrderID returns the current pointer, minting and persisting one
	// when none exists yet. Repeated calls return the same id.
	PeekOrderID(ctx context.Context) (uuid.UUID, error)
	// CloseBasket turns the whole basket into a new order in one transaction
	// and returns the order id.
	CloseBasket(ctx context.Context) (uuid.UUID, error)
}

type orderUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Recorder
	logger  *slog.Logger
	newID   func() uuid.UUID
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Recorder, logger *slog.Logger) OrderCommands {
	return &orderUseCaseImpl{
		uow:     uow,
		clock:   clk,
		metrics: m,
		logger:  logger,
		newID:   uuid.New,
	}
}

func (uc *orderUseCaseImpl) PeekOrderID(ctx context.Context) (id uuid.UUID, err error) {
	ctx, span := tracing.Start(ctx, "Orders.PeekOrderID")
	defer func() { tracing.End(span, err) }()

	var found bool
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, ok, derr := tx.Sequence().Get(ctx)
		id, found = ptr.OrderID, ok
		return derr
	})
	if err != nil {
		return uuid.Nil, shared.StoreErr(err)
	}
	if found {
		return id, nil
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, ok, derr := tx.Sequence().Get(ctx)
		if derr != nil {
			return derr
		}
		if ok {
			id = ptr.OrderID
			return nil
		}
		next := ptr.Next(uc.newID())
		if derr = tx.Sequence().Put(ctx, ptr, next); derr != nil {
			return derr
		}
		id = next.OrderID
		return nil
	})
	if err != nil {
		return uuid.Nil, shared.StoreErr(err)
	}

	uc.logger.DebugContext(ctx, "order id minted on peek", slog.String("order_id", id.String()))
	return id, nil
}

func (uc *orderUseCaseImpl) CloseBasket(ctx context.Context) (id uuid.UUID, err error) {
	ctx, span := tracing.Start(ctx, "Orders.CloseBasket")
	defer func() { tracing.End(span, err) }()

	var lines int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, _, derr := tx.Sequence().Get(ctx)
		if derr != nil {
			return derr
		}
		next := ptr.Next(uc.newID())
		if derr = tx.Sequence().Put(ctx, ptr, next); derr != nil {
			return derr
		}

		entries, derr := tx.Basket().List(ctx)
		if derr != nil {
			return derr
		}
		if derr = tx.Orders().Create(ctx, order.NewOrder(next.OrderID, entries, uc.clock.Now())); derr != nil {
			return derr
		}
		// Rental holds stay until they expire.
		if _, derr = tx.Basket().Clear(ctx); derr != nil {
			return derr
		}

		id, lines = next.OrderID, len(entries)
		return nil
	})
	if err != nil {
		return uuid.Nil, shared.StoreErr(err)
	}

	uc.metrics.OrderClosed(lines)
	span.SetAttributes(attribute.String("order.id", id.String()), attribute.Int("order.lines", lines))
	uc.logger.InfoContext(ctx, "basket closed",
		slog.String("order_id", id.String()),
		slog.Int("lines", lines))
	return id, nil
}
