package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	timeframe string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show current spot prices for gold and silver" }
func (*pricesCmd) Usage() string {
	return `mzt prices [-timeframe <tf>]

  Fetches and shows the current spot prices in EUR per troy ounce,
  including the web sources the answer is grounded on.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "timeframe", "", "timeframe, see \"mzt topic zeitraeume\"")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := timeframeFlag(c.timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snap, err := refreshSpot(ctx, tf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPrices(renderer.NewReport(muenztracker.NewInventory(), snap)))
	return subcommands.ExitSuccess
}
