package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	persediaan "github.com/melinasalsa28/kartu-persediaan"
)

type exportCmd struct {
	item   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export an item's card as an XLSX workbook" }
func (*exportCmd) Usage() string {
	return `kp export -item <name> [-o <file.xlsx>]

  Exports the card to a spreadsheet with the same 12 columns as the CSV
  layout. The default output file is Kartu_Persediaan_<name>_Average.xlsx.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name")
	f.StringVar(&c.output, "o", "", "Output file (default Kartu_Persediaan_<name>_Average.xlsx)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	output := c.output
	if output == "" {
		output = fmt.Sprintf("Kartu_Persediaan_%s_Average.xlsx", c.item)
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := persediaan.ExportExcel(out, card); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %q: %v\n", c.item, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %q to %s\n", c.item, output)
	return subcommands.ExitSuccess
}
