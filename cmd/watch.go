package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

type watchCmd struct {
	schedule  string
	timeframe string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "periodically refresh prices and print the total value" }
func (*watchCmd) Usage() string {
	return `mzt watch [-schedule <cron>] [-timeframe <tf>]

  Refreshes the spot prices on a cron schedule (hourly by default) and
  prints the total inventory value after each refresh. Runs until
  interrupted.

Usage Examples:
$ mzt watch -schedule "*/30 * * * *"

`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.schedule, "schedule", "", "cron schedule for refreshes, default from the config")
	f.StringVar(&c.timeframe, "timeframe", "", "timeframe, see \"mzt topic zeitraeume\"")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := timeframeFlag(c.timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	schedule := c.schedule
	if schedule == "" {
		schedule = appConfig().Schedule
	}

	svc, err := newSpotService(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresh := func() {
		if err := svc.Refresh(ctx, tf); err != nil {
			fmt.Fprintf(os.Stderr, "refresh failed: %v\n", err)
			return
		}
		c.printTotal(svc.Snapshot())
	}

	runner := cron.New()
	if _, err := runner.AddFunc(schedule, refresh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", schedule, err)
		return subcommands.ExitUsageError
	}

	refresh() // once immediately, the schedule only fires later
	runner.Start()
	defer runner.Stop()

	<-ctx.Done()
	fmt.Fprintln(os.Stderr, "stopping watch")
	return subcommands.ExitSuccess
}

// printTotal prints a one-line valuation, watch output is meant for logs.
func (c *watchCmd) printTotal(snap spot.Snapshot) {
	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	total := muenztracker.CurrentTotal(inv.Items(), snap.Gold.Price, snap.Silver.Price)
	fmt.Printf("%s\tGold %.2f\tSilber %.2f\tGesamt %s\n",
		muenztracker.Today(), snap.Gold.Price, snap.Silver.Price, muenztracker.EUR(total))
}
