//go:build unit || e2e

package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScenarios exercises the reservation flows end to end against whatever
// store newUoW returns. Each subtest gets a fresh store.
func RunScenarios(t *testing.T, newUoW func(t *testing.T) shared.UnitOfWork) {
	scenarios := []struct {
		name string
		run  func(t *testing.T, r *Rig)
	}{
		{"capacity is enforced and released on expiry", capacityScenario},
		{"expiry boundary is inclusive", expiryBoundaryScenario},
		{"rejected reservation leaves state unchanged", rejectedScenario},
		{"unknown equipment is not found", unknownEquipmentScenario},
		{"days are clamped", clampScenario},
		{"remove releases the hold", removeScenario},
		{"clear removes every reservation", clearScenario},
		{"close basket produces the last invoice", closeBasketScenario},
		{"peek is idempotent and follows close", peekScenario},
		{"last invoice is empty without orders", lastInvoiceEmptyScenario},
		{"all invoices skip empty orders and sort by title", allInvoicesScenario},
		{"equipment listing reports availability", equipmentListingScenario},
		{"concurrent reservations never exceed stock", concurrentScenario},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			sc.run(t, NewRig(t, newUoW(t)))
		})
	}
}

func capacityScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 2")

	r.MustReserve(t, "Drill", 1)
	r.MustReserve(t, "Drill", 1)

	res, err := r.Basket.Reserve(ctx, "Drill", 1)
	require.NoError(t, err)
	assert.False(t, res.Admitted)
	assert.Equal(t, uuid.Nil, res.ID)

	r.Clock.Add(24 * time.Hour)
	r.MustReserve(t, "Drill", 1)
	assert.Equal(t, 1, r.StoredRentals(t, "Drill"), "expired holds are reaped on admission")

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3, "expiry releases capacity, not basket entries")
}

func expiryBoundaryScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Bosch jackhammer, Specialized, 1")
	r.MustReserve(t, "Bosch jackhammer", 2)

	r.Clock.Add(48*time.Hour - time.Second)
	res, err := r.Basket.Reserve(ctx, "Bosch jackhammer", 1)
	require.NoError(t, err)
	assert.False(t, res.Admitted)

	r.Clock.Add(time.Second)
	r.MustReserve(t, "Bosch jackhammer", 1)
}

func rejectedScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "KamAZ truck, Regular, 1")
	first := r.MustReserve(t, "KamAZ truck", 3)

	before, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)

	res, err := r.Basket.Reserve(ctx, "KamAZ truck", 3)
	require.NoError(t, err)
	assert.False(t, res.Admitted)

	after, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, first.ID, after[0].ID)
	assert.Equal(t, 1, r.ActiveRentals(t, "KamAZ truck"))
}

func unknownEquipmentScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 2")

	res, err := r.Basket.Reserve(ctx, "Hovercraft", 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errs.ErrEquipmentNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func clampScenario(t *testing.T, r *Rig) {
	r.LoadCatalog(t, "Drill, Heavy, 5")

	assert.Equal(t, 1, r.MustReserve(t, "Drill", 0).Days)
	assert.Equal(t, 1, r.MustReserve(t, "Drill", -7).Days)
	assert.Equal(t, 365, r.MustReserve(t, "Drill", 366).Days)
	assert.Equal(t, 12, r.MustReserve(t, "Drill", 12).Days)
}

func removeScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 1")
	res := r.MustReserve(t, "Drill", 5)

	require.NoError(t, r.Basket.Remove(ctx, res.ID))
	assert.Equal(t, 0, r.StoredRentals(t, "Drill"))

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = r.Basket.Remove(ctx, res.ID)
	assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	r.MustReserve(t, "Drill", 1)
}

func clearScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 2", "KamAZ truck, Regular, 2")
	r.MustReserve(t, "Drill", 1)
	r.MustReserve(t, "Drill", 1)
	r.MustReserve(t, "KamAZ truck", 1)

	removed, err := r.Basket.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, r.StoredRentals(t, "Drill"))
	assert.Equal(t, 0, r.StoredRentals(t, "KamAZ truck"))

	removed, err = r.Basket.Clear(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func closeBasketScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Caterpillar bulldozer, Heavy, 3", "KamAZ truck, Regular, 3")
	r.MustReserve(t, "Caterpillar bulldozer", 1)
	r.Clock.Add(time.Minute)
	r.MustReserve(t, "KamAZ truck", 2)

	orderID, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, r.ActiveRentals(t, "Caterpillar bulldozer"), "holds outlive the basket")

	last, err := r.Invoices.GetLastInvoice(ctx)
	require.NoError(t, err)

	expected := []struct {
		OrderID uuid.UUID
		Invoice pricing.Invoice
	}{{
		OrderID: orderID,
		Invoice: pricing.Invoice{
			Title: "Monday, March 4, 2024 3:30:00 PM",
			Rows: []pricing.InvoiceRow{
				{Name: "Caterpillar bulldozer", Price: 160},
				{Name: "KamAZ truck", Price: 220},
			},
			Price: 380,
			Bonus: 3,
		},
	}}
	require.Len(t, last, 1)
	actual := []struct {
		OrderID uuid.UUID
		Invoice pricing.Invoice
	}{{OrderID: last[0].OrderID, Invoice: last[0].Invoice}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("last invoice mismatch (-want +got):\n%s", diff)
	}

	byID, err := r.Invoices.GetInvoice(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, last[0], *byID)
}

func peekScenario(t *testing.T, r *Rig) {
	ctx := context.Background()

	first, err := r.Orders.PeekOrderID(ctx)
	require.NoError(t, err)
	again, err := r.Orders.PeekOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	closed, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, closed)

	peeked, err := r.Orders.PeekOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, closed, peeked)
}

func lastInvoiceEmptyScenario(t *testing.T, r *Rig) {
	ctx := context.Background()

	_, err := r.Orders.PeekOrderID(ctx)
	require.NoError(t, err)

	last, err := r.Invoices.GetLastInvoice(ctx)
	require.NoError(t, err)
	assert.NotNil(t, last)
	assert.Empty(t, last)

	_, err = r.Invoices.GetInvoice(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func allInvoicesScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Drill, Heavy, 10")

	_, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	r.Clock.Add(24 * time.Hour)
	r.MustReserve(t, "Drill", 1)
	tuesday, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	r.Clock.Add(-24 * time.Hour)
	r.MustReserve(t, "Drill", 2)
	monday, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	all, err := r.Invoices.GetAllInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "orders without lines are skipped")
	assert.Equal(t, monday, all[0].OrderID)
	assert.Equal(t, tuesday, all[1].OrderID)
	assert.Equal(t, 220, all[0].Invoice.Price)
	assert.Equal(t, 160, all[1].Invoice.Price)
}

func equipmentListingScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	r.LoadCatalog(t, "Jack hammer, Specialized, 1", "Caterpillar bulldozer, Heavy, 2")
	r.MustReserve(t, "Jack hammer", 1)

	list, err := r.Equipment.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Caterpillar bulldozer", list[0].Name)
	assert.Equal(t, 2, list[0].Available)
	assert.False(t, list[0].OutOfStock)

	assert.Equal(t, "Jack hammer", list[1].Name)
	assert.Equal(t, "Specialized", list[1].Class)
	assert.Equal(t, 0, list[1].Available)
	assert.True(t, list[1].OutOfStock)

	r.Clock.Add(25 * time.Hour)
	list, err = r.Equipment.ListEquipment(ctx)
	require.NoError(t, err)
	assert.False(t, list[1].OutOfStock, "expired holds are not counted")
}

func concurrentScenario(t *testing.T, r *Rig) {
	ctx := context.Background()
	const stock, callers = 3, 8
	r.LoadCatalog(t, fmt.Sprintf("Drill, Heavy, %d", stock))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Basket.Reserve(ctx, "Drill", 1)
			if err != nil || !res.Admitted {
				return
			}
			mu.Lock()
			admitted++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, admitted, stock)
	assert.Positive(t, admitted)
	assert.Equal(t, admitted, r.ActiveRentals(t, "Drill"))

	items, err := r.BasketQ.ListBasket(ctx)
	require.NoError(t, err)
	assert.Len(t, items, admitted)
}
