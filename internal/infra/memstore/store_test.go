//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/infra/memstore"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newEntry(name string) basket.Entry {
	return basket.Entry{ID: uuid.New(), Name: name, Days: 1, Class: equipment.ClassHeavy, CreatedAt: now}
}

func TestStore_WithinCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	item, err := equipment.NewItem("Drill", equipment.ClassHeavy, 2)
	require.NoError(t, err)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().Put(ctx, item)
	})
	require.NoError(t, err)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Catalog().Get(ctx, "Drill")
		require.NoError(t, err)
		assert.Equal(t, equipment.ClassHeavy, got.Class())
		assert.Equal(t, 2, got.Stock())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	boom := errors.New("boom")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Basket().Add(ctx, newEntry("Drill")))
		require.NoError(t, tx.Rentals().Add(ctx, "Drill", equipment.Rental{ReservationID: uuid.New(), ExpiresAt: now}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Basket().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)

		rentals, err := tx.Rentals().List(ctx, "Drill")
		require.NoError(t, err)
		assert.Empty(t, rentals)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ReadOnlyRejectsWrites(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	err := store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Basket().Add(ctx, newEntry("Drill"))
	})
	assert.True(t, infra.IsKind(err, infra.KindReadOnly))
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memstore.New().Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestBasket_InsertionOrderAndRemove(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	a, b, c := newEntry("A"), newEntry("B"), newEntry("C")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, e := range []basket.Entry{a, b, c} {
			if err := tx.Basket().Add(ctx, e); err != nil {
				return err
			}
		}
		return tx.Basket().Remove(ctx, b.ID)
	})
	require.NoError(t, err)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Basket().List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []basket.Entry{a, c}, entries)

		_, err = tx.Basket().Get(ctx, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		return nil
	})
	require.NoError(t, err)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Basket().Remove(ctx, b.ID)
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRentals_RemoveExpiredBoundary(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	past := equipment.Rental{ReservationID: uuid.New(), ExpiresAt: now.Add(-time.Minute)}
	exact := equipment.Rental{ReservationID: uuid.New(), ExpiresAt: now}
	future := equipment.Rental{ReservationID: uuid.New(), ExpiresAt: now.Add(time.Minute)}

	var removed int
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, r := range []equipment.Rental{past, exact, future} {
			if err := tx.Rentals().Add(ctx, "Drill", r); err != nil {
				return err
			}
		}
		var err error
		removed, err = tx.Rentals().RemoveExpired(ctx, "Drill", now)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rentals, err := tx.Rentals().List(ctx, "Drill")
		require.NoError(t, err)
		assert.Equal(t, []equipment.Rental{future}, rentals)
		return nil
	})
	require.NoError(t, err)
}

func TestSequence_VersionedPut(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	first := order.SequencePointer{}.Next(uuid.New())

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, ok, err := tx.Sequence().Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		return tx.Sequence().Put(ctx, order.SequencePointer{}, first)
	})
	require.NoError(t, err)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sequence().Put(ctx, order.SequencePointer{}, first.Next(uuid.New()))
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict))

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, ok, err := tx.Sequence().Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, first, ptr)
		assert.Equal(t, int64(1), ptr.Version)
		return nil
	})
	require.NoError(t, err)
}

func TestOrders_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	o1 := order.NewOrder(uuid.New(), []basket.Entry{newEntry("A")}, now)
	o2 := order.NewOrder(uuid.New(), nil, now)

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Orders().Create(ctx, o1))
		require.NoError(t, tx.Orders().Create(ctx, o2))
		err := tx.Orders().Create(ctx, o1)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		return nil
	})
	require.NoError(t, err)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Orders().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		list, err := tx.Orders().List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, o1.ID(), list[0].ID())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ConcurrentWritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Basket().Add(ctx, newEntry("Drill"))
			})
		}()
	}
	wg.Wait()

	err := store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Basket().List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 50)
		return nil
	})
	require.NoError(t, err)
}
