package availability

import (
	"context"
	"time"

	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/usecase/shared"
)

type Decision struct {
	Item     *equipment.Item
	Active   int
	Reaped   int
	Admitted bool
}

// Tracker answers capacity questions inside a caller's transaction.
type Tracker struct {
	metrics *metrics.Recorder
}

func NewTracker(m *metrics.Recorder) *Tracker {
	return &Tracker{metrics: m}
}

func (t *Tracker) LookupClass(ctx context.Context, tx shared.Tx, name string) (equipment.Class, error) {
	item, err := tx.Catalog().Get(ctx, name)
	if err != nil {
		return "", TranslateLookupErr(err)
	}
	return item.Class(), nil
}

// Admit locks the item, reaps holds expired at now and decides whether one
// more unit can be handed out. Nothing is inserted; on Admitted the caller
// adds the hold within the same transaction.
func (t *Tracker) Admit(ctx context.Context, tx shared.Tx, name string, now time.Time) (Decision, error) {
	item, err := tx.Catalog().Lock(ctx, name)
	if err != nil {
		return Decision{}, TranslateLookupErr(err)
	}

	reaped, err := tx.Rentals().RemoveExpired(ctx, name, now)
	if err != nil {
		return Decision{}, err
	}
	t.metrics.Reaped(reaped)

	rentals, err := tx.Rentals().List(ctx, name)
	if err != nil {
		return Decision{}, err
	}
	active := equipment.CountActive(rentals, now)

	return Decision{
		Item:     item,
		Active:   active,
		Reaped:   reaped,
		Admitted: equipment.AvailableUnits(item.Stock(), active) > 0,
	}, nil
}

// AvailableUnits is the read-only view: expired holds are ignored, not removed.
// Unknown equipment has no units.
func (t *Tracker) AvailableUnits(ctx context.Context, tx shared.Tx, name string, now time.Time) (int, error) {
	item, err := tx.Catalog().Get(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, err
	}
	rentals, err := tx.Rentals().List(ctx, name)
	if err != nil {
		return 0, err
	}
	return equipment.AvailableUnits(item.Stock(), equipment.CountActive(rentals, now)), nil
}

func TranslateLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(errs.ErrEquipmentNotFound)
	}
	return err
}
