package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/settle"
	"github.com/etnz/settle/renderer"
	"github.com/google/subcommands"
)

type settleCmd struct {
	output string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "compute the minimal list of payments that settles the book" }
func (*settleCmd) Usage() string {
	return `scs settle [-o <locator>]

  Computes everyone's net balance and the payments that bring them all back
  to zero. With -o, also writes the result to a spreadsheet (.xlsx, .csv or
  gsheet://<spreadsheet-id>/<sheet>).

Usage Examples:
# Print the payment list.
$ scs settle

# Also export it next to the expense sheet.
$ scs settle -o settlements.xlsx

`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Spreadsheet locator to export the settlement to.")
}

func (c *settleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := settle.Process(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SettlementMarkdown(report))

	if c.output != "" {
		writer, err := openWriter(ctx, c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := writer.WriteSettlements(ctx, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Settlement written to %s\n", c.output)
	}

	return subcommands.ExitSuccess
}
