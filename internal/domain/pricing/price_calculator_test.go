//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTieredPriceCalculator_Price(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()

	t.Run("zero days is free for every class", func(t *testing.T) {
		for _, class := range []equipment.Class{equipment.ClassHeavy, equipment.ClassRegular, equipment.ClassSpecialized} {
			assert.Equal(t, 0, calc.Price(class, 0), class.String())
		}
	})

	t.Run("negative days is free", func(t *testing.T) {
		assert.Equal(t, 0, calc.Price(equipment.ClassHeavy, -3))
	})

	t.Run("heavy charges setup fee plus premium rate", func(t *testing.T) {
		for days := 1; days <= 10; days++ {
			assert.Equal(t, 100+60*days, calc.Price(equipment.ClassHeavy, days), "days=%d", days)
		}
	})

	t.Run("regular drops to the lower rate after two days", func(t *testing.T) {
		expected := map[int]int{1: 160, 2: 220, 3: 260, 4: 300, 5: 340, 10: 540}
		for days, want := range expected {
			assert.Equal(t, want, calc.Price(equipment.ClassRegular, days), "days=%d", days)
		}
	})

	t.Run("specialized has no setup fee and drops after three days", func(t *testing.T) {
		expected := map[int]int{1: 60, 2: 120, 3: 180, 4: 220, 5: 260, 10: 460}
		for days, want := range expected {
			assert.Equal(t, want, calc.Price(equipment.ClassSpecialized, days), "days=%d", days)
		}
	})

	t.Run("matches the piecewise formulas over the whole range", func(t *testing.T) {
		for days := 1; days <= 10; days++ {
			regular := 100 + min(days, 2)*60 + max(days-2, 0)*40
			specialized := min(days, 3)*60 + max(days-3, 0)*40
			assert.Equal(t, regular, calc.Price(equipment.ClassRegular, days))
			assert.Equal(t, specialized, calc.Price(equipment.ClassSpecialized, days))
		}
	})
}

func TestTieredPriceCalculator_LoyaltyBonus(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()

	assert.Equal(t, 2, calc.LoyaltyBonus(equipment.ClassHeavy))
	assert.Equal(t, 1, calc.LoyaltyBonus(equipment.ClassRegular))
	assert.Equal(t, 1, calc.LoyaltyBonus(equipment.ClassSpecialized))
}

func TestBuildInvoice(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()
	first := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)

	entry := func(name string, class equipment.Class, days int, at time.Time) basket.Entry {
		return basket.Entry{ID: uuid.New(), Name: name, Class: class, Days: days, CreatedAt: at}
	}

	t.Run("empty order yields empty rows and zero totals", func(t *testing.T) {
		actual := pricing.BuildInvoice(calc, nil)

		assert.NotNil(t, actual.Rows)
		assert.Empty(t, actual.Rows)
		assert.Zero(t, actual.Price)
		assert.Zero(t, actual.Bonus)
		assert.Empty(t, actual.Title)
		assert.True(t, actual.IsEmpty())
	})

	t.Run("heavy and regular lines", func(t *testing.T) {
		entries := []basket.Entry{
			entry("Caterpillar bulldozer", equipment.ClassHeavy, 1, first),
			entry("KamAZ truck", equipment.ClassRegular, 2, first.Add(time.Minute)),
		}

		expected := pricing.Invoice{
			Title: "Monday, March 4, 2024 3:30:00 PM",
			Rows: []pricing.InvoiceRow{
				{Name: "Caterpillar bulldozer", Price: 160},
				{Name: "KamAZ truck", Price: 220},
			},
			Price: 380,
			Bonus: 3,
		}

		if diff := cmp.Diff(expected, pricing.BuildInvoice(calc, entries)); diff != "" {
			t.Errorf("invoice mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("title follows insertion order, not the earliest timestamp", func(t *testing.T) {
		later := first.Add(48 * time.Hour)
		entries := []basket.Entry{
			entry("Jack hammer", equipment.ClassSpecialized, 4, later),
			entry("Bosch jackhammer", equipment.ClassSpecialized, 1, first),
		}

		actual := pricing.BuildInvoice(calc, entries)

		assert.Equal(t, later.Format(pricing.TitleLayout), actual.Title)
		assert.Equal(t, "Jack hammer", actual.Rows[0].Name)
		assert.Equal(t, 220, actual.Rows[0].Price)
		assert.Equal(t, 280, actual.Price)
		assert.Equal(t, 2, actual.Bonus)
	})

	t.Run("zero-day line still counts a row and a bonus", func(t *testing.T) {
		actual := pricing.BuildInvoice(calc, []basket.Entry{{Class: equipment.ClassHeavy}})

		assert.Len(t, actual.Rows, 1)
		assert.Zero(t, actual.Price)
		assert.Equal(t, 2, actual.Bonus)
		assert.Empty(t, actual.Title)
	})
}
