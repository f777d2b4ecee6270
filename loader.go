package persediaan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadStore discovers and loads every card from a data directory. Each
// "<name>.csv" file in the directory becomes the card of item <name>.
// A missing directory is not an error: it simply yields an empty store.
func LoadStore(dir, currency string) (*Store, error) {
	store := NewStore()

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read data directory %q: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".csv")
		card, err := loadCardFile(filepath.Join(dir, e.Name()), name, currency)
		if err != nil {
			return nil, err
		}
		store.AddCard(card)
	}
	return store, nil
}

// loadCardFile opens and decodes a single card file.
func loadCardFile(path, name, currency string) (*Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open card file %q: %w", path, err)
	}
	defer f.Close()

	card, err := DecodeCard(f, name, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode card file %q: %w", path, err)
	}
	return card, nil
}

// SaveCard saves a single card to "<dir>/<name>.csv", creating the
// directory if needed.
func SaveCard(dir string, c *Card) error {
	if c.Name() == "" {
		return fmt.Errorf("cannot save a card with an empty name")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, c.Name()+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening card file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeCard(f, c)
}

// SaveStore saves every card of the store into dir.
func SaveStore(dir string, s *Store) error {
	for _, name := range s.Items() {
		c, err := s.Card(name)
		if err != nil {
			return err
		}
		if err := SaveCard(dir, c); err != nil {
			return err
		}
	}
	return nil
}
