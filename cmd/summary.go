package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the current total value of the inventory" }
func (*summaryCmd) Usage() string {
	return `mzt summary

  Fetches the current spot prices and shows the total value of the
  inventory along with per-metal prices.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	snap, err := refreshSpot(ctx, spot.Intraday)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Zusammenfassung %s\n\n", muenztracker.Today())
	fmt.Fprintf(&b, "* Gold: %s je Feinunze\n", muenztracker.EUR(snap.Gold.Price))
	fmt.Fprintf(&b, "* Silber: %s je Feinunze\n", muenztracker.EUR(snap.Silver.Price))
	total := muenztracker.CurrentTotal(inv.Items(), snap.Gold.Price, snap.Silver.Price)
	fmt.Fprintf(&b, "\n**Gesamtwert (%d Positionen): %s**\n", inv.Len(), muenztracker.EUR(total))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
