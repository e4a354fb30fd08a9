package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/settle"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	description string
	paidBy      string
	amount      string
	sharedWith  string
	date        string
	memo        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a shared expense in the book" }
func (*addCmd) Usage() string {
	return `scs add -d <description> -p <payer> -a <amount> [-s <names>] [-date <YYYY-MM-DD>] [-m <memo>]

  Appends an expense to the book. The amount is split equally between the
  people in -s (everyone by default). The payer is credited with the full
  amount whether or not they share it.

Usage Examples:
# Alice paid 40 for pizza, split between everyone.
$ scs add -d "Pizza" -p Alice -a 40

# Bob paid 60 for gas, split between Bob and Alice only.
$ scs add -d "Gas" -p Bob -a 60 -s "Bob, Alice"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the expense.")
	f.StringVar(&c.paidBy, "p", "", "Who paid the expense.")
	f.StringVar(&c.amount, "a", "", "Amount paid, in the book currency.")
	f.StringVar(&c.sharedWith, "s", "", "Comma-separated names sharing the expense. Everyone by default.")
	f.StringVar(&c.date, "date", "", "Date of the expense (YYYY-MM-DD).")
	f.StringVar(&c.memo, "m", "", "Free-form note attached to the expense.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	value, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	shared := book.Roster().Names()
	if strings.TrimSpace(c.sharedWith) != "" {
		shared = strings.Split(c.sharedWith, ",")
	}

	expense, err := settle.NewExpense(book.Roster(), c.description, c.paidBy, settle.A(value, book.Currency()), shared)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.date != "" {
		expense, err = expense.WithDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.memo != "" {
		expense = expense.WithMemo(c.memo)
	}

	return EncodeExpenses(expense)
}
