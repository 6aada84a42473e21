//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"equipment-rental/internal/usecase/shared"
	"equipment-rental/tests/common/storetest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LoadCatalog(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()

	input := strings.Join([]string{
		"Caterpillar bulldozer, Heavy, 2",
		"KamAZ truck, Regular, 1",
		"",
		"Broken line",
		"Jack hammer, Specialized, 0",
		"Hovercraft, Flying, 1",
		"  , Heavy, 1",
		"Bosch jackhammer, Specialized, x",
		"Komatsu crane, Heavy, 1, extra",
	}, "\n")

	result, err := r.Catalog.LoadCatalog(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 7, result.Skipped)

	list, err := r.Equipment.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Caterpillar bulldozer", list[0].Name)
	assert.Equal(t, "KamAZ truck", list[1].Name)

	expected := `
# HELP equipment_rental_catalog_lines_loaded_total Catalog lines applied
# TYPE equipment_rental_catalog_lines_loaded_total counter
equipment_rental_catalog_lines_loaded_total 2
# HELP equipment_rental_catalog_lines_skipped_total Malformed catalog lines skipped
# TYPE equipment_rental_catalog_lines_skipped_total counter
equipment_rental_catalog_lines_skipped_total 7
`
	err = testutil.GatherAndCompare(r.Registry, strings.NewReader(expected),
		"equipment_rental_catalog_lines_loaded_total",
		"equipment_rental_catalog_lines_skipped_total")
	assert.NoError(t, err)
}

func TestCatalog_LoadCatalogLine(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()

	ok, err := r.Catalog.LoadCatalogLine(ctx, "Drill, Heavy, 2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Catalog.LoadCatalogLine(ctx, "Drill, Heavy")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("reloading a line replaces the stock", func(t *testing.T) {
		ok, err := r.Catalog.LoadCatalogLine(ctx, "Drill, Heavy, 5")
		require.NoError(t, err)
		assert.True(t, ok)

		list, err := r.Equipment.ListEquipment(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 5, list[0].Stock)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestCatalog_LoadCatalogReadError(t *testing.T) {
	r := storetest.NewMemoryRig(t)

	_, err := r.Catalog.LoadCatalog(context.Background(), failingReader{})
	assert.Error(t, err)

	var count int
	err = r.UoW.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Catalog().List(ctx)
		count = len(items)
		return err
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}
