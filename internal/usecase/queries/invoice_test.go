//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/tests/common/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPeeker struct{ id uuid.UUID }

func (p fixedPeeker) PeekOrderID(context.Context) (uuid.UUID, error) { return p.id, nil }

func TestGetLastInvoice_DanglingPointer(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()

	_, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	q := queries.NewInvoiceQueries(r.UoW, pricing.NewDefaultPriceCalculator(), fixedPeeker{id: uuid.New()}, logger)

	last, err := q.GetLastInvoice(ctx)
	require.NoError(t, err)
	assert.Empty(t, last)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "missing order")
}

func TestGetLastInvoice_EmptyOrderStillReturned(t *testing.T) {
	r := storetest.NewMemoryRig(t)
	ctx := context.Background()

	id, err := r.Orders.CloseBasket(ctx)
	require.NoError(t, err)

	last, err := r.Invoices.GetLastInvoice(ctx)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, id, last[0].OrderID)
	assert.True(t, last[0].Invoice.IsEmpty())
	assert.NotNil(t, last[0].Invoice.Rows)
}

func TestWriteInvoicesText(t *testing.T) {
	first, second, empty := uuid.New(), uuid.New(), uuid.New()
	views := []queries.InvoiceView{
		{
			OrderID: first,
			Invoice: pricing.Invoice{
				Title: "Monday, March 4, 2024 3:30:00 PM",
				Rows: []pricing.InvoiceRow{
					{Name: "Caterpillar bulldozer", Price: 160},
					{Name: "KamAZ truck", Price: 220},
				},
				Price: 380,
				Bonus: 3,
			},
		},
		{OrderID: empty, Invoice: pricing.Invoice{Rows: []pricing.InvoiceRow{}}},
		{
			OrderID: second,
			Invoice: pricing.Invoice{
				Title: "Tuesday, March 5, 2024 9:00:00 AM",
				Rows:  []pricing.InvoiceRow{{Name: "Jack hammer", Price: 60}},
				Price: 60,
				Bonus: 1,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, queries.WriteInvoicesText(&buf, views))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Rental invoices\n\n"))
	assert.Contains(t, out, "Invoice for Monday, March 4, 2024 3:30:00 PM, tracking no: "+first.String())
	assert.Contains(t, out, "Caterpillar bulldozer\t\t\t160€\n")
	assert.Contains(t, out, "Price: 380€\t\t\tEarned bonuses: 3\n")
	assert.NotContains(t, out, empty.String())
	assert.True(t, strings.HasSuffix(out, "All invoices total\nPrice: 440€\t\t\tEarned bonuses: 4\n\n"))
}

func TestWriteInvoicesText_NoInvoices(t *testing.T) {
	require.NoError(t, queries.WriteInvoicesText(io.Discard, nil))

	var buf bytes.Buffer
	require.NoError(t, queries.WriteInvoicesText(&buf, nil))
	assert.Equal(t, "Rental invoices\n\nAll invoices total\nPrice: 0€\t\t\tEarned bonuses: 0\n\n", buf.String())
}
