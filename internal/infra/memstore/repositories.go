package memstore

import (
	"context"
	"slices"
	"sort"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/infra"

	"github.com/google/uuid"
)

func (t *memTx) writable(op string) error {
	if t.readOnly {
		return infra.WrapRepoErr(infra.KindReadOnly, op+" in read-only transaction", nil)
	}
	return nil
}

type catalogRepo struct{ tx *memTx }

func (r catalogRepo) Put(_ context.Context, item *equipment.Item) error {
	if err := r.tx.writable("put catalog item"); err != nil {
		return err
	}
	r.tx.state.catalog[item.Name()] = itemRecord{class: item.Class(), stock: item.Stock()}
	return nil
}

func (r catalogRepo) Get(_ context.Context, name string) (*equipment.Item, error) {
	rec, ok := r.tx.state.catalog[name]
	if !ok {
		return nil, infra.NewNotFound("equipment not found")
	}
	return equipment.ReconstructItem(name, rec.class, rec.stock), nil
}

// Writers are already serialized, so locking is a plain read.
func (r catalogRepo) Lock(ctx context.Context, name string) (*equipment.Item, error) {
	if err := r.tx.writable("lock catalog item"); err != nil {
		return nil, err
	}
	return r.Get(ctx, name)
}

func (r catalogRepo) List(_ context.Context) ([]*equipment.Item, error) {
	items := make([]*equipment.Item, 0, len(r.tx.state.catalog))
	for name, rec := range r.tx.state.catalog {
		items = append(items, equipment.ReconstructItem(name, rec.class, rec.stock))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })
	return items, nil
}

type rentalRepo struct{ tx *memTx }

func (r rentalRepo) List(_ context.Context, name string) ([]equipment.Rental, error) {
	holds := r.tx.state.rentals[name]
	out := make([]equipment.Rental, 0, len(holds))
	for id, exp := range holds {
		out = append(out, equipment.Rental{ReservationID: id, ExpiresAt: exp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	return out, nil
}

func (r rentalRepo) Add(_ context.Context, name string, rental equipment.Rental) error {
	if err := r.tx.writable("add rental"); err != nil {
		return err
	}
	holds, ok := r.tx.state.rentals[name]
	if !ok {
		holds = map[uuid.UUID]time.Time{}
		r.tx.state.rentals[name] = holds
	}
	if _, exists := holds[rental.ReservationID]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "rental already exists", nil)
	}
	holds[rental.ReservationID] = rental.ExpiresAt
	return nil
}

func (r rentalRepo) Remove(_ context.Context, name string, reservationID uuid.UUID) error {
	if err := r.tx.writable("remove rental"); err != nil {
		return err
	}
	delete(r.tx.state.rentals[name], reservationID)
	return nil
}

func (r rentalRepo) RemoveExpired(_ context.Context, name string, now time.Time) (int, error) {
	if err := r.tx.writable("remove expired rentals"); err != nil {
		return 0, err
	}
	removed := 0
	for id, exp := range r.tx.state.rentals[name] {
		if !exp.After(now) {
			delete(r.tx.state.rentals[name], id)
			removed++
		}
	}
	return removed, nil
}

type basketRepo struct{ tx *memTx }

func (r basketRepo) List(_ context.Context) ([]basket.Entry, error) {
	out := make([]basket.Entry, 0, len(r.tx.state.basketOrder))
	for _, id := range r.tx.state.basketOrder {
		out = append(out, r.tx.state.basket[id])
	}
	return out, nil
}

func (r basketRepo) Get(_ context.Context, id uuid.UUID) (basket.Entry, error) {
	entry, ok := r.tx.state.basket[id]
	if !ok {
		return basket.Entry{}, infra.NewNotFound("basket entry not found")
	}
	return entry, nil
}

func (r basketRepo) Add(_ context.Context, entry basket.Entry) error {
	if err := r.tx.writable("add basket entry"); err != nil {
		return err
	}
	if _, exists := r.tx.state.basket[entry.ID]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "basket entry already exists", nil)
	}
	r.tx.state.basket[entry.ID] = entry
	r.tx.state.basketOrder = append(r.tx.state.basketOrder, entry.ID)
	return nil
}

func (r basketRepo) Remove(_ context.Context, id uuid.UUID) error {
	if err := r.tx.writable("remove basket entry"); err != nil {
		return err
	}
	if _, ok := r.tx.state.basket[id]; !ok {
		return infra.NewNotFound("basket entry not found")
	}
	delete(r.tx.state.basket, id)
	r.tx.state.basketOrder = slices.DeleteFunc(r.tx.state.basketOrder, func(v uuid.UUID) bool { return v == id })
	return nil
}

func (r basketRepo) Clear(_ context.Context) (int, error) {
	if err := r.tx.writable("clear basket"); err != nil {
		return 0, err
	}
	n := len(r.tx.state.basket)
	r.tx.state.basket = map[uuid.UUID]basket.Entry{}
	r.tx.state.basketOrder = nil
	return n, nil
}

type orderRepo struct{ tx *memTx }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	if err := r.tx.writable("create order"); err != nil {
		return err
	}
	if _, exists := r.tx.state.orders[o.ID()]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "order already exists", nil)
	}
	r.tx.state.orders[o.ID()] = o
	r.tx.state.orderOrder = append(r.tx.state.orderOrder, o.ID())
	return nil
}

func (r orderRepo) Get(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.tx.state.orders[id]
	if !ok {
		return nil, infra.NewNotFound("order not found")
	}
	return o, nil
}

func (r orderRepo) List(_ context.Context) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(r.tx.state.orderOrder))
	for _, id := range r.tx.state.orderOrder {
		out = append(out, r.tx.state.orders[id])
	}
	return out, nil
}

func (r orderRepo) Count(_ context.Context) (int, error) {
	return len(r.tx.state.orders), nil
}

type sequenceRepo struct{ tx *memTx }

func (r sequenceRepo) Get(_ context.Context) (order.SequencePointer, bool, error) {
	if r.tx.state.sequence == nil {
		return order.SequencePointer{}, false, nil
	}
	return *r.tx.state.sequence, true, nil
}

func (r sequenceRepo) Put(_ context.Context, prev, next order.SequencePointer) error {
	if err := r.tx.writable("put sequence pointer"); err != nil {
		return err
	}
	var stored int64
	if r.tx.state.sequence != nil {
		stored = r.tx.state.sequence.Version
	}
	if stored != prev.Version {
		return infra.WrapRepoErr(infra.KindConflict, "sequence pointer version changed", nil)
	}
	ptr := next
	r.tx.state.sequence = &ptr
	return nil
}
