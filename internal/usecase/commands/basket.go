package commands

//go:generate mockgen -source=basket.go -destination=../../../tests/mock/commands/basket_mock.go -package=mock_commands

import (
	"context"
	"log/slog"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/pkg/tracing"
	"equipment-rental/internal/usecase/availability"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// ReserveResult reports a rejected admission through Admitted, not an error.
type ReserveResult struct {
	ID       uuid.UUID
	Name     string
	Days     int
	Class    equipment.Class
	Admitted bool
}

type BasketCommands interface {
	Reserve(ctx context.Context, name string, days int) (*ReserveResult, error)
	Remove(ctx context.Context, id uuid.UUID) error
	// Clear removes every current reservation, one transaction each, and
	// returns how many it removed.
	Clear(ctx context.Context) (int, error)
}

type basketUseCaseImpl struct {
	uow     shared.UnitOfWork
	tracker *availability.Tracker
	factory *basket.Factory
	clock   clock.Clock
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func NewBasketUseCase(
	uow shared.UnitOfWork,
	tracker *availability.Tracker,
	factory *basket.Factory,
	clk clock.Clock,
	m *metrics.Recorder,
	logger *slog.Logger,
) BasketCommands {
	return &basketUseCaseImpl{
		uow:     uow,
		tracker: tracker,
		factory: factory,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

func (uc *basketUseCaseImpl) Reserve(ctx context.Context, name string, days int) (result *ReserveResult, err error) {
	ctx, span := tracing.Start(ctx, "Basket.Reserve",
		attribute.String("equipment.name", name),
		attribute.Int("rental.days", days),
	)
	defer func() { tracing.End(span, err) }()

	days = basket.ClampDays(days, uc.factory.MinDays, uc.factory.MaxDays)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		decision, derr := uc.tracker.Admit(ctx, tx, name, now)
		if derr != nil {
			return derr
		}

		result = &ReserveResult{Name: name, Days: days, Class: decision.Item.Class()}
		if !decision.Admitted {
			return nil
		}

		entry, derr := uc.factory.NewEntry(name, days, decision.Item.Class(), now)
		if derr != nil {
			return derr
		}
		if derr = tx.Basket().Add(ctx, entry); derr != nil {
			return derr
		}
		if derr = tx.Rentals().Add(ctx, name, entry.Rental()); derr != nil {
			return derr
		}

		result.ID = entry.ID
		result.Admitted = true
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrEquipmentNotFound) {
			uc.metrics.Reservation(metrics.OutcomeUnknown)
		}
		return nil, shared.StoreErr(err)
	}

	if result.Admitted {
		uc.metrics.Reservation(metrics.OutcomeAdmitted)
		uc.logger.InfoContext(ctx, "reservation admitted",
			slog.String("reservation_id", result.ID.String()),
			slog.String("name", name),
			slog.Int("days", days))
	} else {
		uc.metrics.Reservation(metrics.OutcomeRejected)
		uc.logger.InfoContext(ctx, "reservation rejected, no units available", slog.String("name", name))
	}
	span.SetAttributes(attribute.Bool("reservation.admitted", result.Admitted))
	return result, nil
}

func (uc *basketUseCaseImpl) Remove(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.Start(ctx, "Basket.Remove", attribute.String("reservation.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = uc.remove(ctx, id); err != nil {
		return err
	}
	uc.logger.InfoContext(ctx, "reservation removed", slog.String("reservation_id", id.String()))
	return nil
}

func (uc *basketUseCaseImpl) Clear(ctx context.Context) (removed int, err error) {
	ctx, span := tracing.Start(ctx, "Basket.Clear")
	defer func() { tracing.End(span, err) }()

	var ids []uuid.UUID
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, derr := tx.Basket().List(ctx)
		if derr != nil {
			return derr
		}
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		return nil
	})
	if err != nil {
		return 0, shared.StoreErr(err)
	}

	// A failure part way leaves the remaining ids in place; calling Clear
	// again picks them up.
	for _, id := range ids {
		if rerr := uc.remove(ctx, id); rerr != nil {
			if errs.Is(rerr, errs.ErrReservationNotFound) {
				continue
			}
			uc.logger.WarnContext(ctx, "clear stopped",
				slog.Int("removed", removed),
				slog.Int("remaining", len(ids)-removed))
			return removed, rerr
		}
		removed++
	}

	uc.logger.InfoContext(ctx, "basket cleared", slog.Int("removed", removed))
	span.SetAttributes(attribute.Int("basket.removed", removed))
	return removed, nil
}

func (uc *basketUseCaseImpl) remove(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, derr := tx.Basket().Get(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = tx.Basket().Remove(ctx, id); derr != nil {
			return derr
		}
		return tx.Rentals().Remove(ctx, entry.Name, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.NotFound(errs.ErrReservationNotFound)
		}
		return shared.StoreErr(err)
	}
	uc.metrics.Removal()
	return nil
}
