package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/fxconv/config"
	"github.com/etnz/fxconv/renderer"
	"github.com/etnz/fxconv/trades"
)

type salesCmd struct {
	cfg *config.Config
	log zerolog.Logger

	input     string
	tolerance float64
	json      bool
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "reconciles realized sales with their closed lots" }
func (*salesCmd) Usage() string {
	return `fxconv sales -i <trades.csv> [-tolerance <abs>] [-json]

  Reads an IBKR trade report, and groups each sale with the lots it closed.
  The lots of a sale must add up to the sale's quantity and basis, exactly
  unless a tolerance is given. Any inconsistent sale fails the command.

`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "IBKR trade report (csv)")
	f.Float64Var(&c.tolerance, "tolerance", c.cfg.LotTolerance, "Absolute difference allowed between a sale and the sum of its lots")
	f.BoolVar(&c.json, "json", false, "Print the sales as json instead of a report")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i flag is required")
		return subcommands.ExitUsageError
	}
	if c.tolerance < 0 {
		fmt.Fprintln(os.Stderr, "-tolerance must not be negative")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trade report %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, err := trades.DecodeRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trade report %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	filtered := trades.Filter(records)
	c.log.Debug().Int("records", len(records)).Int("kept", len(filtered)).Msg("trade report read")

	sales, err := trades.NewReconciler(c.log, c.tolerance).Reconcile(filtered)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling sales: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sales); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing sales: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.SalesMarkdown(sales))
	return subcommands.ExitSuccess
}
