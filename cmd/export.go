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

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory as CSV" }
func (*exportCmd) Usage() string {
	return `mzt export [-file <csv>]

  Writes the inventory as CSV to a file, or to stdout when omitted.
  See "mzt topic csv" for the format.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to write, stdout when omitted")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := LoadInventoryFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.file != "" {
		file, err := os.Create(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := muenztracker.ExportItems(out, inv.Items()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.file != "" {
		fmt.Printf("Exported %d positions to %s\n", inv.Len(), c.file)
	}
	return subcommands.ExitSuccess
}
