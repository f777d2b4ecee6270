package persediaan

// OpeningDescription is the sentinel description marking an item's opening
// balance row. At most one such row exists per card and it is always first.
const OpeningDescription = "Saldo Awal"

// Entry is one leg of a row: a quantity, a unit price and the resulting
// amount. It is used for the purchase side, the sale side, and the running
// balance, where Price is the weighted-average unit cost.
type Entry struct {
	Qty    Quantity
	Price  Money
	Amount Money
}

// IsZero reports whether all three fields are zero.
func (e Entry) IsZero() bool {
	return e.Qty.IsZero() && e.Price.IsZero() && e.Amount.IsZero()
}

// Equal reports whether two entries hold the same values.
func (e Entry) Equal(o Entry) bool {
	return e.Qty.Equal(o.Qty) && e.Price.Equal(o.Price) && e.Amount.Equal(o.Amount)
}

// entry builds an Entry computing the amount from quantity and price.
func entry(qty Quantity, price Money) Entry {
	return Entry{Qty: qty, Price: price, Amount: price.Mul(qty)}
}

// Row is one ledger entry of a card. Exactly one of Purchase or Sale is
// non-zero (the opening balance is modeled as a purchase). Balance is the
// running state after this row is applied; it is a pure function of all
// prior rows of the card.
type Row struct {
	Date        Date
	DocNo       string
	Description string
	Purchase    Entry
	Sale        Entry
	Balance     Entry
}

// IsOpening reports whether this row is the item's opening balance.
func (r Row) IsOpening() bool { return r.Description == OpeningDescription }

// IsPurchase reports whether this row records a purchase (including the
// opening balance).
func (r Row) IsPurchase() bool { return !r.Purchase.IsZero() }

// IsSale reports whether this row records a sale.
func (r Row) IsSale() bool { return !r.Sale.IsZero() }

// Equal reports whether two rows hold the same values, balance included.
func (r Row) Equal(o Row) bool {
	return r.Date == o.Date &&
		r.DocNo == o.DocNo &&
		r.Description == o.Description &&
		r.Purchase.Equal(o.Purchase) &&
		r.Sale.Equal(o.Sale) &&
		r.Balance.Equal(o.Balance)
}
