// Package cmd implements the CLI application to manage a precious metal
// inventory and its valuation.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "bestand")
	c.Register(&updateCmd{}, "bestand")
	c.Register(&deleteCmd{}, "bestand")
	c.Register(&listCmd{}, "bestand")
	c.Register(&importCmd{}, "bestand")
	c.Register(&exportCmd{}, "bestand")

	c.Register(&pricesCmd{}, "preise")
	c.Register(&historyCmd{}, "preise")
	c.Register(&summaryCmd{}, "preise")
	c.Register(&reportCmd{}, "preise")
	c.Register(&watchCmd{}, "preise")

	c.Register(&topicCmd{}, "hilfe")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "", "Path to the inventory file (JSONL format), overrides the config")
var configFile = flag.String("config", "", "Path to the YAML configuration file")

// inventoryPath resolves the inventory file, the flag wins over the config.
func inventoryPath() string {
	if *inventoryFile != "" {
		return *inventoryFile
	}
	return appConfig().Inventory
}

// LoadInventoryFile loads the app inventory. A missing file is an empty
// inventory.
func LoadInventoryFile() (*muenztracker.Inventory, error) {
	return muenztracker.LoadInventory(inventoryPath())
}

// SaveInventoryFile saves the app inventory.
func SaveInventoryFile(inv *muenztracker.Inventory) error {
	return muenztracker.SaveInventory(inventoryPath(), inv)
}

// newSpotService builds the spot price service backed by Gemini. The API
// key is taken from the GEMINI_API_KEY environment variable by the SDK.
func newSpotService(ctx context.Context) (*spot.Service, error) {
	g, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	cfg := appConfig()
	oracle := spot.NewClient(g).
		WithModel(cfg.Model).
		WithReferencePrices(cfg.Reference.Gold, cfg.Reference.Silver)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return spot.NewService(oracle, logger), nil
}

// refreshSpot fetches current prices and histories for the timeframe and
// returns the resulting snapshot.
func refreshSpot(ctx context.Context, tf spot.Timeframe) (spot.Snapshot, error) {
	svc, err := newSpotService(ctx)
	if err != nil {
		return spot.Snapshot{}, err
	}
	if err := svc.Refresh(ctx, tf); err != nil {
		return spot.Snapshot{}, err
	}
	return svc.Snapshot(), nil
}

// timeframeFlag parses the -timeframe flag value, empty falls back to
// the configured default.
func timeframeFlag(s string) (spot.Timeframe, error) {
	if s == "" {
		s = appConfig().Timeframe
	}
	return spot.ParseTimeframe(s)
}
