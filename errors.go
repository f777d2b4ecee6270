package persediaan

import "errors"

// Domain errors. All of them mean a rejected user action with no state
// change; callers surface them and leave the ledger untouched.
var (
	// ErrDuplicateItem is returned when creating an item whose name is already taken.
	ErrDuplicateItem = errors.New("item already exists")
	// ErrUnknownItem is returned when looking up an item that was never created.
	ErrUnknownItem = errors.New("unknown item")
	// ErrEmptyItemName is returned when creating an item with a blank name.
	ErrEmptyItemName = errors.New("item name is empty")
	// ErrDuplicateOpeningBalance is returned when an item already has a "Saldo Awal" row.
	ErrDuplicateOpeningBalance = errors.New("opening balance already recorded")
	// ErrInsufficientStock is returned when a sale asks for more than the balance quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrIndexOutOfRange is returned when deleting a row at a position outside the card.
	ErrIndexOutOfRange = errors.New("transaction index out of range")
	// ErrInvalidQuantity is returned for zero or negative quantities: they carry
	// no costing information.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice is returned for negative unit prices.
	ErrInvalidPrice = errors.New("price must not be negative")
)
