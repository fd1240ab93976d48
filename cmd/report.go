package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Deibi93/muenztracker/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	timeframe string
	output    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the full inventory report" }
func (*reportCmd) Usage() string {
	return `mzt report [-timeframe <tf>] [-o <file>]

  Fetches spot prices and renders the full report: prices with sources,
  all positions with their current values, and the valuation history
  over the given timeframe.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "timeframe", "", "timeframe, see \"mzt topic zeitraeume\"")
	f.StringVar(&c.output, "o", "", "write the raw markdown to this file instead of the terminal")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := timeframeFlag(c.timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	snap, err := refreshSpot(ctx, tf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderReport(renderer.NewReport(inv, snap))
	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote report to %s\n", c.output)
		return subcommands.ExitSuccess
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
