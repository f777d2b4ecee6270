package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	persediaan "github.com/melinasalsa28/kartu-persediaan"
	"github.com/melinasalsa28/kartu-persediaan/renderer"
)

// postFlags are the flags shared by every posting command.
type postFlags struct {
	item     string
	date     string
	quantity float64
	price    float64
	docNo    string
	desc     string
}

func (p *postFlags) register(f *flag.FlagSet, withDoc bool) {
	f.StringVar(&p.item, "item", "", "Item name")
	f.StringVar(&p.date, "d", persediaan.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&p.quantity, "q", 0, "Number of units")
	f.Float64Var(&p.price, "p", 0, "Price per unit")
	if withDoc {
		f.StringVar(&p.docNo, "doc", "", "Document number (nomor bukti)")
		f.StringVar(&p.desc, "memo", "", "Description of the transaction")
	}
}

// parse validates the shared flags and returns the typed values.
func (p *postFlags) parse(f *flag.FlagSet) (persediaan.Date, persediaan.Quantity, persediaan.Money, bool) {
	if p.item == "" || p.quantity <= 0 || p.price < 0 {
		f.Usage()
		return persediaan.Date{}, persediaan.Quantity{}, persediaan.Money{}, false
	}
	day, err := persediaan.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return persediaan.Date{}, persediaan.Quantity{}, persediaan.Money{}, false
	}
	return day, persediaan.Q(p.quantity), persediaan.M(p.price, currency()), true
}

// post runs a posting function against the store and persists the item's
// card on success. Validation and computation happen before any file is
// touched, so a rejected posting leaves the data directory untouched.
func post(item string, fn func(*persediaan.Store) (persediaan.Row, error)) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	row, err := fn(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveCard(store, item); status != subcommands.ExitSuccess {
		return status
	}
	debugf("posted row on %s for %q", row.Date, item)
	fmt.Println(renderer.Row(row))
	return subcommands.ExitSuccess
}

// --- Opening Balance Command ---

type openingCmd struct {
	postFlags
}

func (*openingCmd) Name() string     { return "opening" }
func (*openingCmd) Synopsis() string { return "record the opening balance of an item, once" }
func (*openingCmd) Usage() string {
	return `kp opening -item <name> -q <quantity> -p <price> [-d <date>]

  Records the "Saldo Awal" row of an item: its initial quantity and unit
  cost. Each item has at most one opening balance and it is always the
  first row of the card.
`
}

func (c *openingCmd) SetFlags(f *flag.FlagSet) { c.register(f, false) }

func (c *openingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, qty, price, ok := c.parse(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return post(c.item, func(s *persediaan.Store) (persediaan.Row, error) {
		return s.PostOpeningBalance(c.item, day, qty, price)
	})
}

// --- Buy Command ---

type buyCmd struct {
	postFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase, recomputing the average cost" }
func (*buyCmd) Usage() string {
	return `kp buy -item <name> -q <quantity> -p <price> [-d <date>] [-doc <no>] [-memo <text>]

  Records a purchase. The balance unit cost becomes the weighted average of
  the stock held and the stock bought.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.register(f, true) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, qty, price, ok := c.parse(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return post(c.item, func(s *persediaan.Store) (persediaan.Row, error) {
		return s.PostPurchase(c.item, day, c.docNo, c.desc, qty, price)
	})
}

// --- Sell Command ---

type sellCmd struct {
	postFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale, charged at the current average cost" }
func (*sellCmd) Usage() string {
	return `kp sell -item <name> -q <quantity> -p <price> [-d <date>] [-doc <no>] [-memo <text>]

  Records a sale. The cost of goods sold is the quantity at the current
  average cost; the sale price is kept for revenue reporting only. Selling
  more than the balance quantity is rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.register(f, true) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, qty, price, ok := c.parse(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return post(c.item, func(s *persediaan.Store) (persediaan.Row, error) {
		return s.PostSale(c.item, day, c.docNo, c.desc, qty, price)
	})
}

// --- Delete Command ---

type deleteCmd struct {
	item  string
	index int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by its row index" }
func (*deleteCmd) Usage() string {
	return `kp delete -item <name> -index <n>

  Deletes the row at the given index (as shown by 'kp card') and replays
  the remaining rows so every stored balance stays consistent. A deletion
  that would make a later sale exceed the stock is rejected.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name")
	f.IntVar(&c.index, "index", -1, "Row index to delete, first row is 0")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" || c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteRow(c.item, c.index); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveCard(store, c.item); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted row %d of %q.\n", c.index, c.item)
	return subcommands.ExitSuccess
}
