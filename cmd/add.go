package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/spot"
	"github.com/google/subcommands"
)

type addCmd struct {
	name     string
	weight   float64
	unit     string
	itemType string
	metal    string
	purity   float64
	date     string
	price    float64
	quantity int
	minted   string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a position to the inventory" }
func (*addCmd) Usage() string {
	return `mzt add -name <name> -weight <weight> [options]

  Adds a position to the inventory and saves the inventory file.

Usage Examples:
$ mzt add -name "Krügerrand" -weight 1 -unit oz -metal Gold -purity 916.7 \
      -price 1850.50 -date 2024-03-01

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the position")
	f.Float64Var(&c.weight, "weight", 0, "weight per piece")
	f.StringVar(&c.unit, "unit", "oz", "weight unit, g or oz")
	f.StringVar(&c.itemType, "type", "Münze", "Münze or Barren")
	f.StringVar(&c.metal, "metal", "Gold", "Gold or Silber")
	f.Float64Var(&c.purity, "purity", 999.9, "fineness in parts per thousand")
	f.StringVar(&c.date, "date", "", "purchase date (YYYY-MM-DD), defaults to today")
	f.Float64Var(&c.price, "price", 0, "total purchase price in EUR")
	f.IntVar(&c.quantity, "quantity", 1, "number of pieces")
	f.StringVar(&c.minted, "minted", "", "minting year or date, informational")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	it, err := c.item()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	added, err := inv.Add(it)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveInventoryFile(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q (id %s) to %s\n", added.Name, added.ID, inventoryPath())
	return subcommands.ExitSuccess
}

// item builds the new inventory item from the flags.
func (c *addCmd) item() (muenztracker.Item, error) {
	var it muenztracker.Item
	var err error

	it.Name = c.name
	it.Weight = c.weight
	it.Purity = c.purity
	it.PurchasePrice = c.price
	it.Quantity = c.quantity
	it.MintingDate = c.minted
	it.Notes = c.notes

	if it.WeightUnit, err = muenztracker.ParseWeightUnit(c.unit); err != nil {
		return it, err
	}
	if it.ItemType, err = muenztracker.ParseItemType(c.itemType); err != nil {
		return it, err
	}
	if it.Metal, err = spot.ParseMetal(c.metal); err != nil {
		return it, err
	}
	if c.date == "" {
		it.PurchaseDate = muenztracker.Today()
	} else if it.PurchaseDate, err = muenztracker.ParseDate(c.date); err != nil {
		return it, err
	}
	return it, nil
}
