// Package persediaan implements a kartu persediaan: an inventory ledger
// valued under the weighted-average costing method.
//
// Each tracked item owns an append-only sequence of transaction rows
// (opening balance, purchases, sales). Every row carries the running
// balance (quantity, average unit cost, total value) after the row is
// applied, so the last row of a card is the item's current state.
//
// The core functionalities are:
//   - Valuation: recomputing the weighted-average unit cost on every
//     purchase and charging sales at the current average cost, rejecting
//     sales that exceed the available quantity.
//   - Ledger Store: the set of item cards, with append and
//     delete-by-position as the only mutations; a deletion replays the
//     remaining rows so stored balances stay consistent.
//   - Data Persistence: one CSV file per item with a fixed 12-column
//     layout that round-trips losslessly, plus an XLSX export.
//
// This package serves as the foundational logic for the `kp` command-line
// tool.
package persediaan
