package persediaan

import "fmt"

// This file is the valuation engine: pure computation of a new row from a
// current balance and a transaction request, under the weighted-average
// costing method. Nothing here mutates a card; the store does that.

// checkRequest validates the quantity and price common to all requests.
func checkRequest(qty Quantity, price Money) error {
	if !qty.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrInvalidQuantity, qty)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrInvalidPrice, price.Text())
	}
	return nil
}

// openingRow computes the opening balance row. The balance is the purchase
// itself: the card's history starts here.
func openingRow(day Date, qty Quantity, price Money) (Row, error) {
	if err := checkRequest(qty, price); err != nil {
		return Row{}, err
	}
	leg := entry(qty, price)
	return Row{
		Date:        day,
		Description: OpeningDescription,
		Purchase:    leg,
		Balance:     leg,
	}, nil
}

// purchaseRow computes the row for a purchase against the balance bal.
// The balance unit price is recomputed as the weighted average of the stock
// held and the stock bought; this is the only place the average moves.
func purchaseRow(bal Entry, day Date, docNo, desc string, qty Quantity, price Money) (Row, error) {
	if err := checkRequest(qty, price); err != nil {
		return Row{}, err
	}
	leg := entry(qty, price)
	newQty := bal.Qty.Add(qty)
	newAmount := bal.Amount.Add(leg.Amount)
	newPrice := M(0, price.Currency())
	if !newQty.IsZero() {
		newPrice = newAmount.Div(newQty)
	}
	return Row{
		Date:        day,
		DocNo:       docNo,
		Description: desc,
		Purchase:    leg,
		Balance:     Entry{Qty: newQty, Price: newPrice, Amount: newAmount},
	}, nil
}

// saleRow computes the row for a sale against the balance bal.
// The cost of goods sold is charged at the current average cost bal.Price,
// never at the sale price; the sale price only lands in the sale leg for
// revenue reporting. The balance unit price carries forward unchanged.
func saleRow(bal Entry, day Date, docNo, desc string, qty Quantity, price Money) (Row, error) {
	if err := checkRequest(qty, price); err != nil {
		return Row{}, err
	}
	if qty.GreaterThan(bal.Qty) {
		return Row{}, fmt.Errorf("%w: sale of %s exceeds balance of %s", ErrInsufficientStock, qty, bal.Qty)
	}
	cogs := bal.Price.Mul(qty)
	return Row{
		Date:        day,
		DocNo:       docNo,
		Description: desc,
		Sale:        entry(qty, price),
		Balance: Entry{
			Qty:    bal.Qty.Sub(qty),
			Price:  bal.Price,
			Amount: bal.Amount.Sub(cogs),
		},
	}, nil
}

// Replay recomputes the balance fields of rows as a pure fold from the
// empty state. Dates, document numbers, descriptions and the purchase/sale
// input legs are preserved verbatim; only balances are regenerated.
//
// It fails with ErrInsufficientStock if the history makes any sale
// infeasible, which is how a deletion that would oversell is caught.
func Replay(rows []Row) ([]Row, error) {
	replayed := make([]Row, 0, len(rows))
	var bal Entry
	for i, r := range rows {
		var nr Row
		var err error
		switch {
		case r.IsPurchase():
			nr, err = purchaseRow(bal, r.Date, r.DocNo, r.Description, r.Purchase.Qty, r.Purchase.Price)
		case r.IsSale():
			nr, err = saleRow(bal, r.Date, r.DocNo, r.Description, r.Sale.Qty, r.Sale.Price)
		default:
			err = fmt.Errorf("row has neither a purchase nor a sale leg")
		}
		if err != nil {
			return nil, fmt.Errorf("replaying row %d: %w", i, err)
		}
		bal = nr.Balance
		replayed = append(replayed, nr)
	}
	return replayed, nil
}
