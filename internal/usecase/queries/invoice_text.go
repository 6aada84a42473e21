package queries

import (
	"bufio"
	"fmt"
	"io"
)

// WriteInvoicesText renders invoices as a plain-text statement followed by a
// grand total. Invoices with a zero price are left out.
func WriteInvoicesText(w io.Writer, views []InvoiceView) error {
	bw := bufio.NewWriter(w)
	var price, bonus int

	fmt.Fprint(bw, "Rental invoices\n\n")
	for _, v := range views {
		inv := v.Invoice
		if inv.Price == 0 {
			continue
		}
		fmt.Fprintf(bw, "Invoice for %s, tracking no: %s\n\n", inv.Title, v.OrderID)
		for _, row := range inv.Rows {
			fmt.Fprintf(bw, "%s\t\t\t%d€\n", row.Name, row.Price)
		}
		fmt.Fprint(bw, "Invoice total\n")
		fmt.Fprintf(bw, "Price: %d€\t\t\tEarned bonuses: %d\n\n", inv.Price, inv.Bonus)
		price += inv.Price
		bonus += inv.Bonus
	}
	fmt.Fprint(bw, "All invoices total\n")
	fmt.Fprintf(bw, "Price: %d€\t\t\tEarned bonuses: %d\n\n", price, bonus)

	return bw.Flush()
}
