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

type updateCmd struct {
	id       string
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

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update a position of the inventory" }
func (*updateCmd) Usage() string {
	return `mzt update -id <id> [options]

  Updates the position with the given id. Only the fields whose flags
  are set change, everything else is kept. Use "mzt list -l" to see ids.

Usage Examples:
$ mzt update -id 4f1e27a90c3b58d6 -notes "Geschenk von Oma"

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the position to update")
	f.StringVar(&c.name, "name", "", "name of the position")
	f.Float64Var(&c.weight, "weight", 0, "weight per piece")
	f.StringVar(&c.unit, "unit", "", "weight unit, g or oz")
	f.StringVar(&c.itemType, "type", "", "Münze or Barren")
	f.StringVar(&c.metal, "metal", "", "Gold or Silber")
	f.Float64Var(&c.purity, "purity", 0, "fineness in parts per thousand")
	f.StringVar(&c.date, "date", "", "purchase date (YYYY-MM-DD)")
	f.Float64Var(&c.price, "price", 0, "total purchase price in EUR")
	f.IntVar(&c.quantity, "quantity", 0, "number of pieces")
	f.StringVar(&c.minted, "minted", "", "minting year or date, informational")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}

	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	it, ok := inv.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if err := c.apply(f, &it); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := inv.Update(it); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveInventoryFile(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %q (id %s)\n", it.Name, it.ID)
	return subcommands.ExitSuccess
}

// apply copies the flags the user actually set onto the item.
func (c *updateCmd) apply(f *flag.FlagSet, it *muenztracker.Item) error {
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "name":
			it.Name = c.name
		case "weight":
			it.Weight = c.weight
		case "unit":
			it.WeightUnit, err = muenztracker.ParseWeightUnit(c.unit)
		case "type":
			it.ItemType, err = muenztracker.ParseItemType(c.itemType)
		case "metal":
			it.Metal, err = spot.ParseMetal(c.metal)
		case "purity":
			it.Purity = c.purity
		case "date":
			it.PurchaseDate, err = muenztracker.ParseDate(c.date)
		case "price":
			it.PurchasePrice = c.price
		case "quantity":
			it.Quantity = c.quantity
		case "minted":
			it.MintingDate = c.minted
		case "notes":
			it.Notes = c.notes
		}
	})
	return err
}
