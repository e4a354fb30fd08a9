package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/settle/spreadsheet"
	"github.com/google/subcommands"
)

type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a spreadsheet into the book" }
func (*importCmd) Usage() string {
	return `scs import [-n] <locator>

  Reads expenses from a spreadsheet and appends them to the book. The
  locator selects the backend: a .xlsx or .csv file path, or a
  gsheet://<spreadsheet-id>/<sheet> URL for Google Sheets.

  The sheet needs Description, Paid By, Amount and Shared With columns;
  see 'scs topic spreadsheet' for the exact layout.

Usage Examples:
# Import from an Excel workbook.
$ scs import expenses.xlsx

# Validate a Google Sheet without touching the book.
$ scs import -n gsheet://1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/Expenses

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Validate the spreadsheet but do not modify the book.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one spreadsheet locator is required")
		return subcommands.ExitUsageError
	}
	locator := f.Arg(0)

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	reader, err := openReader(ctx, locator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rows, err := reader.ReadExpenses(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", locator, err)
		return subcommands.ExitFailure
	}

	expenses, err := spreadsheet.Expenses(rows, book.Roster(), book.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		fmt.Printf("%q is valid: %d expense(s) ready to import\n", locator, len(expenses))
		return subcommands.ExitSuccess
	}
	return EncodeExpenses(expenses...)
}
