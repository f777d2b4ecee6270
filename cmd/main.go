// Package cmd implements the CLI application to manage kartu persediaan.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	persediaan "github.com/melinasalsa28/kartu-persediaan"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addItemCmd{}, "items")
	c.Register(&itemsCmd{}, "items")

	c.Register(&openingCmd{}, "transactions")
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&cardCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory holding one CSV file per item")

// loadStore loads every card from the app data directory.
func loadStore() (*persediaan.Store, error) {
	return persediaan.LoadStore(*dataDir, currency())
}

// saveCard persists a single card back into the app data directory.
func saveCard(store *persediaan.Store, name string) subcommands.ExitStatus {
	card, err := store.Card(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := persediaan.SaveCard(*dataDir, card); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving card %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
