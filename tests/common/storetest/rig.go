//go:build unit || e2e

package storetest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/infra/memstore"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/usecase/availability"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// Epoch is the mock clock's starting point in every rig.
var Epoch = time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)

// Rig wires the usecases over one store with a controllable clock.
type Rig struct {
	UoW      shared.UnitOfWork
	Clock    *clock.MockClock
	Registry *prometheus.Registry
	Metrics  *metrics.Recorder

	Basket    commands.BasketCommands
	Orders    commands.OrderCommands
	Catalog   commands.CatalogCommands
	BasketQ   queries.BasketQueries
	Equipment queries.EquipmentQueries
	Invoices  queries.InvoiceQueries
}

func NewRig(t *testing.T, uow shared.UnitOfWork) *Rig {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(Epoch)
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorderWithRegisterer(reg)
	calc := pricing.NewDefaultPriceCalculator()
	tracker := availability.NewTracker(rec)
	factory := basket.NewFactory(basket.MinRentalDays, basket.MaxRentalDays)

	orders := commands.NewOrderUseCase(uow, clk, rec, logger)
	return &Rig{
		UoW:       uow,
		Clock:     clk,
		Registry:  reg,
		Metrics:   rec,
		Basket:    commands.NewBasketUseCase(uow, tracker, factory, clk, rec, logger),
		Orders:    orders,
		Catalog:   commands.NewCatalogUseCase(uow, rec, logger),
		BasketQ:   queries.NewBasketQueries(uow, calc),
		Equipment: queries.NewEquipmentQueries(uow, clk),
		Invoices:  queries.NewInvoiceQueries(uow, calc, orders, logger),
	}
}

func NewMemoryRig(t *testing.T) *Rig {
	t.Helper()
	return NewRig(t, memstore.New())
}

func (r *Rig) LoadCatalog(t *testing.T, lines ...string) {
	t.Helper()
	_, err := r.Catalog.LoadCatalog(context.Background(), strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
}

// MustReserve fails the test unless the reservation is admitted.
func (r *Rig) MustReserve(t *testing.T, name string, days int) *commands.ReserveResult {
	t.Helper()
	res, err := r.Basket.Reserve(context.Background(), name, days)
	require.NoError(t, err)
	require.True(t, res.Admitted, "expected %s to be admitted", name)
	return res
}

// ActiveRentals counts holds for name that have not expired at the rig's clock.
func (r *Rig) ActiveRentals(t *testing.T, name string) int {
	t.Helper()
	var n int
	err := r.UoW.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		rentals, err := tx.Rentals().List(ctx, name)
		if err != nil {
			return err
		}
		for _, rental := range rentals {
			if !rental.IsExpired(r.Clock.Now()) {
				n++
			}
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

// StoredRentals counts every hold for name, expired or not.
func (r *Rig) StoredRentals(t *testing.T, name string) int {
	t.Helper()
	var n int
	err := r.UoW.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		rentals, err := tx.Rentals().List(ctx, name)
		n = len(rentals)
		return err
	})
	require.NoError(t, err)
	return n
}
