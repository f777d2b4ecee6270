// Package renderer turns cards and rows into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	persediaan "github.com/melinasalsa28/kartu-persediaan"
)

// Card renders a full kartu persediaan as a titled markdown table with the
// same 12 columns as the persisted layout, plus the row index used by the
// delete command.
func Card(c *persediaan.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Kartu Persediaan - %s\n\n", c.Name())

	rows := c.Rows()
	if len(rows) == 0 {
		b.WriteString("No transactions yet.\n")
		return b.String()
	}

	b.WriteString("| # | Tanggal | Doc No | Description | Purchase Qty | Purchase Price | Purchase Amount | Sales Qty | Sales Price | Sales Amount | Balance Qty | Balance Price | Balance Amount |\n")
	b.WriteString("|--:|---|---|---|--:|--:|--:|--:|--:|--:|--:|--:|--:|\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			i, r.Date, r.DocNo, r.Description,
			r.Purchase.Qty, r.Purchase.Price, r.Purchase.Amount,
			r.Sale.Qty, r.Sale.Price, r.Sale.Amount,
			r.Balance.Qty, r.Balance.Price, r.Balance.Amount)
	}

	bal := c.LastBalance()
	fmt.Fprintf(&b, "\nBalance: %s units at %s, worth %s.\n", bal.Qty, bal.Price, bal.Amount)
	return b.String()
}

// Items renders the list of item names.
func Items(names []string) string {
	if len(names) == 0 {
		return "No items yet. Create one with `kp add-item <name>`.\n"
	}
	var b strings.Builder
	b.WriteString("# Items\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "* %s\n", name)
	}
	return b.String()
}

// Row renders a one-line summary of a posted row.
func Row(r persediaan.Row) string {
	switch {
	case r.IsOpening():
		return fmt.Sprintf("Opening balance of %s at %s, worth %s", r.Purchase.Qty, r.Purchase.Price, r.Purchase.Amount)
	case r.IsPurchase():
		return fmt.Sprintf("Bought %s at %s for %s; balance %s at %s",
			r.Purchase.Qty, r.Purchase.Price, r.Purchase.Amount, r.Balance.Qty, r.Balance.Price)
	case r.IsSale():
		return fmt.Sprintf("Sold %s at %s for %s; balance %s at %s",
			r.Sale.Qty, r.Sale.Price, r.Sale.Amount, r.Balance.Qty, r.Balance.Price)
	default:
		return "empty row"
	}
}
