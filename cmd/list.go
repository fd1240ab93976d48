package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Deibi93/muenztracker/renderer"
	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
)

type listCmd struct {
	long bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the inventory positions" }
func (*listCmd) Usage() string {
	return `mzt list [-l]

  Lists all inventory positions. With -l a plain listing including the
  position ids is printed instead, suitable for update and delete.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.long, "l", false, "plain listing including position ids")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.long {
		for _, it := range inv.Items() {
			fmt.Printf("%s\t%s\t%d\t%s\t%v %s\t%s\n",
				it.ID, it.Name, it.Quantity, it.Metal, it.Weight, it.WeightUnit, it.PurchaseDate)
		}
		return subcommands.ExitSuccess
	}

	// no spot prices here, the table shows dashes for current values
	printMarkdown(renderer.RenderInventory(renderer.NewReport(inv, spot.Snapshot{})))
	return subcommands.ExitSuccess
}
