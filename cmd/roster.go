package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/settle"
	"github.com/google/subcommands"
)

type rosterCmd struct{}

func (*rosterCmd) Name() string     { return "roster" }
func (*rosterCmd) Synopsis() string { return "create a new expense book with the given participants" }
func (*rosterCmd) Usage() string {
	return `scs roster <name> <name>...

  Creates a new expense book declaring who takes part in the split. The
  declaration order matters: when a shared amount does not divide evenly,
  the leftover cents go to the first declared participants.

Usage Examples:
# Start a book for a three people trip.
$ scs roster Alice Bob Charlie

`
}

func (c *rosterCmd) SetFlags(f *flag.FlagSet) {}

func (c *rosterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one participant name is required")
		return subcommands.ExitUsageError
	}

	book := settle.NewBook()
	if err := book.Roster().Add(names...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book.SetCurrency(*defaultCurrency)

	// O_EXCL: refuse to clobber an existing book
	file, err := os.OpenFile(*bookFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := settle.EncodeBook(file, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s with %d participants (%s)\n", *bookFile, book.Roster().Len(), book.Currency())
	return subcommands.ExitSuccess
}
