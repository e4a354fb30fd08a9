package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/settle/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display everyone's net balance" }
func (*balancesCmd) Usage() string {
	return `scs balances

  Displays the net balance of every participant: total paid minus total
  owed. Positive means the group owes them, negative means they owe the
  group. Balances always sum to zero.

`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balances, err := book.Balances()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BalancesMarkdown(balances))
	return subcommands.ExitSuccess
}
