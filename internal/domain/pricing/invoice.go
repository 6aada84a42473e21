package pricing

import (
	"time"

	"equipment-rental/internal/domain/basket"
)

// TitleLayout renders the invoice title as long date followed by long time.
const TitleLayout = "Monday, January 2, 2006 3:04:05 PM"

type Invoice struct {
	Title string       `json:"title"`
	Rows  []InvoiceRow `json:"rows"`
	Price int          `json:"price"`
	Bonus int          `json:"bonus"`
}

type InvoiceRow struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func (i Invoice) IsEmpty() bool {
	return len(i.Rows) == 0
}

// BuildInvoice prices entries in their stored order. The title comes from the
// first entry carrying a timestamp; entries are never sorted.
func BuildInvoice(calc PriceCalculator, entries []basket.Entry) Invoice {
	invoice := Invoice{Rows: make([]InvoiceRow, 0, len(entries))}

	var titleTime time.Time
	for _, e := range entries {
		price := calc.Price(e.Class, e.Days)

		invoice.Price += price
		invoice.Bonus += calc.LoyaltyBonus(e.Class)
		if titleTime.IsZero() {
			titleTime = e.CreatedAt
		}

		invoice.Rows = append(invoice.Rows, InvoiceRow{Name: e.Name, Price: price})
	}

	if !titleTime.IsZero() {
		invoice.Title = titleTime.UTC().Format(TitleLayout)
	}

	return invoice
}
