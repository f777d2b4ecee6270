package renderer

import (
	"strings"
	"testing"

	persediaan "github.com/melinasalsa28/kartu-persediaan"
)

func buildCard(t *testing.T) *persediaan.Card {
	t.Helper()
	s := persediaan.NewStore()
	if err := s.CreateItem("Pensil 2B"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PostOpeningBalance("Pensil 2B", persediaan.MustParseDate("2025-01-01"), persediaan.Q(100), persediaan.M(10.0, "IDR")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PostSale("Pensil 2B", persediaan.MustParseDate("2025-01-05"), "NOTA-1", "penjualan", persediaan.Q(40), persediaan.M(15.0, "IDR")); err != nil {
		t.Fatal(err)
	}
	c, err := s.Card("Pensil 2B")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCard(t *testing.T) {
	got := Card(buildCard(t))

	for _, want := range []string{
		"# Kartu Persediaan - Pensil 2B",
		"| Balance Amount |",
		"Saldo Awal",
		"NOTA-1",
		"| 0 | 2025-01-01 |",
		"| 1 | 2025-01-05 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Card() output missing %q:\n%s", want, got)
		}
	}
}

func TestCard_Empty(t *testing.T) {
	got := Card(persediaan.NewCard("Kosong"))
	if !strings.Contains(got, "No transactions yet.") {
		t.Errorf("Card() of empty card = %q", got)
	}
}

func TestItems(t *testing.T) {
	got := Items([]string{"Buku Tulis", "Pensil 2B"})
	if !strings.Contains(got, "* Buku Tulis") || !strings.Contains(got, "* Pensil 2B") {
		t.Errorf("Items() = %q", got)
	}
	if empty := Items(nil); !strings.Contains(empty, "No items yet") {
		t.Errorf("Items(nil) = %q", empty)
	}
}

func TestRow(t *testing.T) {
	rows := buildCard(t).Rows()
	if got := Row(rows[0]); !strings.HasPrefix(got, "Opening balance of 100") {
		t.Errorf("Row(opening) = %q", got)
	}
	if got := Row(rows[1]); !strings.HasPrefix(got, "Sold 40") {
		t.Errorf("Row(sale) = %q", got)
	}
}
