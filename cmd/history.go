package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
)

type historyCmd struct {
	metal     string
	timeframe string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the spot price history of one metal" }
func (*historyCmd) Usage() string {
	return `mzt history [-metal <metal>] [-timeframe <tf>]

  Displays the spot price series of one metal over the given timeframe.
  The last point is always the current price.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metal, "metal", "Gold", "Gold or Silber")
	f.StringVar(&c.timeframe, "timeframe", "", "timeframe, see \"mzt topic zeitraeume\"")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metal, err := spot.ParseMetal(c.metal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
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

	series := snap.Gold.History
	if metal == spot.Silver {
		series = snap.Silver.History
	}

	fmt.Printf("Datum\t\tPreis\n")
	for _, p := range series {
		fmt.Printf("%s\t%.2f\n", p.Stamp, p.Price)
	}
	return subcommands.ExitSuccess
}
