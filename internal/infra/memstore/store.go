// Package memstore is an in-memory transactional store. Writers are
// serialized and work on a private copy of the state that replaces the
// committed state only when the callback succeeds; readers share a read lock
// on the committed state.
package memstore

import (
	"context"
	"sync"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type itemRecord struct {
	class equipment.Class
	stock int
}

type state struct {
	catalog     map[string]itemRecord
	rentals     map[string]map[uuid.UUID]time.Time
	basket      map[uuid.UUID]basket.Entry
	basketOrder []uuid.UUID
	orders      map[uuid.UUID]*order.Order
	orderOrder  []uuid.UUID
	sequence    *order.SequencePointer
}

func newState() state {
	return state{
		catalog: map[string]itemRecord{},
		rentals: map[string]map[uuid.UUID]time.Time{},
		basket:  map[uuid.UUID]basket.Entry{},
		orders:  map[uuid.UUID]*order.Order{},
	}
}

// Orders are immutable so their pointers are shared between copies.
func (s state) clone() state {
	out := state{
		catalog:     make(map[string]itemRecord, len(s.catalog)),
		rentals:     make(map[string]map[uuid.UUID]time.Time, len(s.rentals)),
		basket:      make(map[uuid.UUID]basket.Entry, len(s.basket)),
		basketOrder: append([]uuid.UUID(nil), s.basketOrder...),
		orders:      make(map[uuid.UUID]*order.Order, len(s.orders)),
		orderOrder:  append([]uuid.UUID(nil), s.orderOrder...),
	}
	for k, v := range s.catalog {
		out.catalog[k] = v
	}
	for name, holds := range s.rentals {
		copied := make(map[uuid.UUID]time.Time, len(holds))
		for id, exp := range holds {
			copied[id] = exp
		}
		out.rentals[name] = copied
	}
	for k, v := range s.basket {
		out.basket[k] = v
	}
	for k, v := range s.orders {
		out.orders[k] = v
	}
	if s.sequence != nil {
		ptr := *s.sequence
		out.sequence = &ptr
	}
	return out
}

type Store struct {
	mu    sync.RWMutex
	state state
}

func New() *Store {
	return &Store{state: newState()}
}

func NewUnitOfWork(s *Store) shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &memTx{state: &working}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = working
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, &memTx{state: &s.state, readOnly: true})
}

type memTx struct {
	state    *state
	readOnly bool
}

func (t *memTx) Catalog() shared.CatalogRepository   { return catalogRepo{t} }
func (t *memTx) Rentals() shared.RentalRepository    { return rentalRepo{t} }
func (t *memTx) Basket() shared.BasketRepository     { return basketRepo{t} }
func (t *memTx) Orders() shared.OrderRepository      { return orderRepo{t} }
func (t *memTx) Sequence() shared.SequenceRepository { return sequenceRepo{t} }
