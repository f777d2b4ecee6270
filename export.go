package persediaan

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName is the sheet holding the card in an exported workbook.
const ExportSheetName = "Kartu Persediaan"

// ExportExcel writes the card to w as an XLSX workbook with the same
// 12 columns as the CSV layout: a header row then one row per transaction.
// Numeric columns are written as numbers so the sheet stays usable for
// further spreadsheet work.
func ExportExcel(w io.Writer, c *Card) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return fmt.Errorf("cannot name export sheet: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}

	for i, r := range c.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		record := []interface{}{
			r.Date.String(), r.DocNo, r.Description,
			cellNumber(r.Purchase.Qty.value), cellNumber(r.Purchase.Price.value), cellNumber(r.Purchase.Amount.value),
			cellNumber(r.Sale.Qty.value), cellNumber(r.Sale.Price.value), cellNumber(r.Sale.Amount.value),
			cellNumber(r.Balance.Qty.value), cellNumber(r.Balance.Price.value), cellNumber(r.Balance.Amount.value),
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &record); err != nil {
			return fmt.Errorf("cannot write export row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// cellNumber converts an exact decimal to the float64 a spreadsheet cell holds.
func cellNumber(d decimal.Decimal) float64 { return d.InexactFloat64() }
