//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"equipment-rental/internal/usecase/shared"
	"equipment-rental/tests/common/storetest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_CloseBasketStoresEntriesVerbatim(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 5", "Jack hammer, Specialized, 5")

	a := r.MustReserve(t, "Jack hammer", 4)
	b := r.MustReserve(t, "Drill", 1)

	id, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	err = r.UoW.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().Get(ctx, id)
		require.NoError(t, err)

		entries := o.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, a.ID, entries[0].ID)
		assert.Equal(t, b.ID, entries[1].ID)
		assert.Equal(t, 4, entries[0].Days)

		ptr, ok, err := tx.Sequence().Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, id, ptr.OrderID)
		assert.Equal(t, int64(1), ptr.Version)
		return nil
	})
	require.NoError(t, err)

	expected := `
# HELP equipment_rental_orders_closed_total Baskets finalized into orders
# TYPE equipment_rental_orders_closed_total counter
equipment_rental_orders_closed_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(r.Registry, strings.NewReader(expected), "equipment_rental_orders_closed_total"))
}

func TestOrders_PeekDoesNotAdvanceVersion(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Orders.PeekOrderID(ctx)
		require.NoError(t, err)
	}

	err := r.UoW.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, _, err := tx.Sequence().Get(ctx)
		assert.Equal(t, int64(1), ptr.Version)
		return err
	})
	require.NoError(t, err)

	_, err = r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	err = r.UoW.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ptr, _, err := tx.Sequence().Get(ctx)
		assert.Equal(t, int64(2), ptr.Version)
		return err
	})
	require.NoError(t, err)
}
