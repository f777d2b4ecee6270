package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/melinasalsa28/kartu-persediaan/renderer"
)

type cardCmd struct {
	item string
}

func (*cardCmd) Name() string     { return "card" }
func (*cardCmd) Synopsis() string { return "display an item's kartu persediaan" }
func (*cardCmd) Usage() string {
	return `kp card -item <name>

  Displays the full card of an item: every transaction with its running
  balance, plus the row indexes used by 'kp delete'.
`
}

func (c *cardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name")
}

func (c *cardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	card, err := store.Card(c.item)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Card(card))
	return subcommands.ExitSuccess
}
