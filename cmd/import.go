package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Deibi93/muenztracker"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import positions from a CSV file" }
func (*importCmd) Usage() string {
	return `mzt import [-file <csv>]

  Imports positions from a CSV file (or stdin) and appends them to the
  inventory. Only the Name and Gewicht columns are required, missing
  columns fall back to defaults. See "mzt topic csv" for the format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to import, stdin when omitted")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	items, err := muenztracker.ImportItems(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, it := range items {
		if _, err := inv.Add(it); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := SaveInventoryFile(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d positions into %s\n", len(items), inventoryPath())
	return subcommands.ExitSuccess
}
