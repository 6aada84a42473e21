//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/shared"
	"equipment-rental/tests/common/storetest"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BasketCommandsTestSuite struct {
	suite.Suite
	rig *storetest.Rig
	ctx context.Context
}

func (s *BasketCommandsTestSuite) SetupTest() {
	s.rig = storetest.NewMemoryRig(s.T())
	s.ctx = context.Background()
	s.rig.LoadCatalog(s.T(), "Drill, Heavy, 1")
}

func (s *BasketCommandsTestSuite) TestReserve_SnapshotsClass() {
	res := s.rig.MustReserve(s.T(), "Drill", 2)

	s.Equal("Drill", res.Name)
	s.Equal("Heavy", res.Class.String())
	s.NotEqual(uuid.Nil, res.ID)

	// Reclassifying the item later must not reprice the basket line.
	s.rig.LoadCatalog(s.T(), "Drill, Specialized, 1")
	items, err := s.rig.BasketQ.ListBasket(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Heavy", items[0].Class)
	s.Equal(220, items[0].Price)
}

func (s *BasketCommandsTestSuite) TestReserve_RecordsOutcomes() {
	s.rig.MustReserve(s.T(), "Drill", 1)

	res, err := s.rig.Basket.Reserve(s.ctx, "Drill", 1)
	s.Require().NoError(err)
	s.False(res.Admitted)

	_, err = s.rig.Basket.Reserve(s.ctx, "Nope", 1)
	s.ErrorIs(err, errs.ErrEquipmentNotFound)

	expected := `
# HELP equipment_rental_reservations_total Reservation attempts by outcome
# TYPE equipment_rental_reservations_total counter
equipment_rental_reservations_total{outcome="admitted"} 1
equipment_rental_reservations_total{outcome="rejected"} 1
equipment_rental_reservations_total{outcome="unknown_equipment"} 1
`
	s.NoError(testutil.GatherAndCompare(s.rig.Registry, strings.NewReader(expected), "equipment_rental_reservations_total"))
}

func (s *BasketCommandsTestSuite) TestRemove_UnknownID() {
	err := s.rig.Basket.Remove(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *BasketCommandsTestSuite) TestClear_EmptyBasket() {
	removed, err := s.rig.Basket.Clear(s.ctx)
	s.Require().NoError(err)
	s.Zero(removed)
}

func TestBasketCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BasketCommandsTestSuite))
}

// brokenUoW fails every transaction the way a store outage would.
type brokenUoW struct{}

func (brokenUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	return infra.WrapRepoErr(infra.KindDBFailure, "connection refused", errors.New("dial tcp"))
}

func (brokenUoW) WithinReadOnly(context.Context, func(context.Context, shared.Tx) error) error {
	return infra.WrapRepoErr(infra.KindDBFailure, "connection refused", errors.New("dial tcp"))
}

func TestCommands_StoreFailureIsMarked(t *testing.T) {
	r := storetest.NewRig(t, brokenUoW{})
	ctx := context.Background()

	_, err := r.Basket.Reserve(ctx, "Drill", 1)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))

	err = r.Basket.Remove(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))

	_, err = r.Basket.Clear(ctx)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))

	_, err = r.Orders.CloseBasket(ctx)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))

	_, err = r.Orders.PeekOrderID(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}
