package persediaan

import (
	"encoding/csv"
	"fmt"
	"io"
)

// A card is persisted as a CSV file with exactly these 12 columns, one
// record per row in chronological order. The layout (header names included)
// is the one the kartu has always used, so existing data files load as-is.
var csvHeader = []string{
	"Tanggal", "Doc No", "Description",
	"Purchase Qty", "Purchase Price", "Purchase Amount",
	"Sales Qty", "Sales Price", "Sales Amount",
	"Balance Qty", "Balance Price", "Balance Amount",
}

// EncodeCard writes the card to w in the persisted CSV layout. Values are
// written with all their digits so that load then save reproduces the file.
func EncodeCard(w io.Writer, c *Card) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write header for %q: %w", c.Name(), err)
	}
	for _, r := range c.rows {
		record := []string{
			r.Date.String(), r.DocNo, r.Description,
			r.Purchase.Qty.String(), r.Purchase.Price.Text(), r.Purchase.Amount.Text(),
			r.Sale.Qty.String(), r.Sale.Price.Text(), r.Sale.Amount.Text(),
			r.Balance.Qty.String(), r.Balance.Price.Text(), r.Balance.Amount.Text(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write row for %q: %w", c.Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCard reads a card named name from the persisted CSV layout.
// No balance is recomputed: the file is the source of truth and decoding
// then encoding is lossless.
func DecodeCard(r io.Reader, name, currency string) (*Card, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read card %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("card %q has no header row", name)
	}

	card := NewCard(name)
	for i, record := range records[1:] {
		row, err := decodeRecord(record, currency)
		if err != nil {
			return nil, fmt.Errorf("cannot parse row %d of card %q: %w", i, name, err)
		}
		card.rows = append(card.rows, row)
	}
	return card, nil
}

func decodeRecord(record []string, currency string) (Row, error) {
	day, err := ParseDate(record[0])
	if err != nil {
		return Row{}, err
	}
	row := Row{Date: day, DocNo: record[1], Description: record[2]}

	legs := []struct {
		e      *Entry
		offset int
	}{
		{&row.Purchase, 3},
		{&row.Sale, 6},
		{&row.Balance, 9},
	}
	for _, leg := range legs {
		if leg.e.Qty, err = parseQty(record[leg.offset]); err != nil {
			return Row{}, err
		}
		if leg.e.Price, err = parseMoney(record[leg.offset+1], currency); err != nil {
			return Row{}, err
		}
		if leg.e.Amount, err = parseMoney(record[leg.offset+2], currency); err != nil {
			return Row{}, err
		}
	}
	return row, nil
}

// parseQty parses a quantity cell, treating the empty cell as zero.
func parseQty(s string) (Quantity, error) {
	if s == "" {
		return Q(0), nil
	}
	return ParseQuantity(s)
}

// parseMoney parses a money cell, treating the empty cell as zero.
func parseMoney(s, currency string) (Money, error) {
	if s == "" {
		return M(0, currency), nil
	}
	return ParseMoney(s, currency)
}
