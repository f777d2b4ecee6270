package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/melinasalsa28/kartu-persediaan/renderer"
)

// --- Add Item Command ---

type addItemCmd struct{}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "create a new item with an empty card" }
func (*addItemCmd) Usage() string {
	return `kp add-item <name>

  Creates a new item. Its card starts empty; record an opening balance with
  'kp opening' before posting transactions.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.CreateItem(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveCard(store, name); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Item %q created.\n", name)
	return subcommands.ExitSuccess
}

// --- Items Command ---

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list all items" }
func (*itemsCmd) Usage() string {
	return `kp items

  Lists the names of all items, one card each.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Items(store.Items()))
	return subcommands.ExitSuccess
}
