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

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "display the expenses recorded in the book" }
func (*txCmd) Usage() string {
	return `scs tx [-head <n> | -tail <n>]

  Displays every expense in the book, in date order, with the grand
  total. Use -head or -tail to display only the first or last n expenses.

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Display only the first n expenses.")
	f.IntVar(&c.tail, "tail", 0, "Display only the last n expenses.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sorted := book.Fmt()
	window, err := slice(sorted, c.head, c.tail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ExpensesMarkdown(window))
	return subcommands.ExitSuccess
}

// slice restricts the book to its first or last n expenses.
func slice(book *settle.Book, head, tail int) (*settle.Book, error) {
	if head < 0 || tail < 0 {
		return nil, fmt.Errorf("head and tail must be positive")
	}
	if head > 0 && tail > 0 {
		return nil, fmt.Errorf("head and tail are mutually exclusive")
	}
	if head == 0 && tail == 0 {
		return book, nil
	}

	expenses := book.Expenses()
	switch {
	case head > 0 && head < len(expenses):
		expenses = expenses[:head]
	case tail > 0 && tail < len(expenses):
		expenses = expenses[len(expenses)-tail:]
	}

	window := settle.NewBook()
	if err := window.Roster().Add(book.Roster().Names()...); err != nil {
		return nil, err
	}
	window.SetCurrency(book.Currency())
	for _, e := range expenses {
		window.Append(e)
	}
	return window, nil
}
