package persediaan

import (
	"fmt"
	"slices"
	"strings"
)

// Card is one item's kartu persediaan: its name and its ordered sequence of
// rows. Order is insertion order and is chronological by construction; no
// reordering ever happens.
type Card struct {
	name string
	rows []Row
}

// NewCard creates an empty card for an item.
func NewCard(name string) *Card {
	return &Card{name: name}
}

// Name returns the item name; it is also the stem of the persisted file.
func (c *Card) Name() string { return c.name }

// Len returns the number of rows in the card.
func (c *Card) Len() int { return len(c.rows) }

// Rows returns a copy of the card's rows, first to last.
func (c *Card) Rows() []Row {
	return slices.Clone(c.rows)
}

// LastBalance returns the balance after the last row, or the zero entry for
// an empty card. This derived value is the canonical current state of the
// item; there is no separately tracked running total to diverge from it.
func (c *Card) LastBalance() Entry {
	if len(c.rows) == 0 {
		return Entry{}
	}
	return c.rows[len(c.rows)-1].Balance
}

// HasOpening reports whether the card already holds a "Saldo Awal" row.
func (c *Card) HasOpening() bool {
	for _, r := range c.rows {
		if r.IsOpening() {
			return true
		}
	}
	return false
}

// append adds a computed row at the end of the card.
func (c *Card) append(r Row) { c.rows = append(c.rows, r) }

// Store owns every item card of a session. It replaces the original's
// process-wide mutable session state with an explicit handle whose
// lifecycle is tied to the caller.
//
// The store assumes a single actor; none of its methods are safe for
// concurrent use.
type Store struct {
	cards map[string]*Card
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cards: make(map[string]*Card)}
}

// CreateItem registers a new item with an empty card.
func (s *Store) CreateItem(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyItemName
	}
	if _, ok := s.cards[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, name)
	}
	s.cards[name] = NewCard(name)
	return nil
}

// AddCard inserts a loaded card into the store, replacing any card with the
// same name. It is meant for persistence loaders, not for user actions.
func (s *Store) AddCard(c *Card) {
	s.cards[c.name] = c
}

// Items returns the sorted names of all items.
func (s *Store) Items() []string {
	names := make([]string, 0, len(s.cards))
	for name := range s.cards {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Card returns the card for name.
func (s *Store) Card(name string) (*Card, error) {
	c, ok := s.cards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return c, nil
}

// Rows returns the ordered row sequence for name.
func (s *Store) Rows(name string) ([]Row, error) {
	c, err := s.Card(name)
	if err != nil {
		return nil, err
	}
	return c.Rows(), nil
}

// LastBalance returns the current balance of name.
func (s *Store) LastBalance(name string) (Entry, error) {
	c, err := s.Card(name)
	if err != nil {
		return Entry{}, err
	}
	return c.LastBalance(), nil
}

// PostOpeningBalance records the opening balance of an item, once. The row
// is always the first of the card: if transactions were posted before the
// opening balance, they are replayed on top of it.
func (s *Store) PostOpeningBalance(name string, day Date, qty Quantity, price Money) (Row, error) {
	c, err := s.Card(name)
	if err != nil {
		return Row{}, err
	}
	if c.HasOpening() {
		return Row{}, fmt.Errorf("%w for %q", ErrDuplicateOpeningBalance, name)
	}
	opening, err := openingRow(day, qty, price)
	if err != nil {
		return Row{}, err
	}
	rows := append([]Row{opening}, c.rows...)
	replayed, err := Replay(rows)
	if err != nil {
		return Row{}, err
	}
	c.rows = replayed
	return replayed[0], nil
}

// PostPurchase records a purchase and returns the computed row.
func (s *Store) PostPurchase(name string, day Date, docNo, desc string, qty Quantity, price Money) (Row, error) {
	c, err := s.Card(name)
	if err != nil {
		return Row{}, err
	}
	row, err := purchaseRow(c.LastBalance(), day, docNo, desc, qty, price)
	if err != nil {
		return Row{}, err
	}
	c.append(row)
	return row, nil
}

// PostSale records a sale and returns the computed row. A sale exceeding
// the balance quantity fails with ErrInsufficientStock and leaves the card
// untouched.
func (s *Store) PostSale(name string, day Date, docNo, desc string, qty Quantity, price Money) (Row, error) {
	c, err := s.Card(name)
	if err != nil {
		return Row{}, err
	}
	row, err := saleRow(c.LastBalance(), day, docNo, desc, qty, price)
	if err != nil {
		return Row{}, err
	}
	c.append(row)
	return row, nil
}

// DeleteRow removes the row at index and replays the remaining rows so
// every stored balance is again a pure function of its predecessors.
// If removing the row would make a later sale exceed the stock, the
// deletion is rejected with ErrInsufficientStock and nothing changes.
func (s *Store) DeleteRow(name string, index int) error {
	c, err := s.Card(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.rows) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.rows))
	}
	remaining := slices.Delete(slices.Clone(c.rows), index, index+1)
	replayed, err := Replay(remaining)
	if err != nil {
		return fmt.Errorf("cannot delete row %d of %q: %w", index, name, err)
	}
	c.rows = replayed
	return nil
}
