package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/fxconv"
	"github.com/etnz/fxconv/config"
	"github.com/etnz/fxconv/renderer"
)

type convertCmd struct {
	cfg *config.Config
	log zerolog.Logger

	rates   ratesFlags
	input   string
	output  string
	from    string
	to      string
	summary bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "converts dated transactions with the rate of their day" }
func (*convertCmd) Usage() string {
	return `fxconv convert -i <transactions.csv> -o <out.csv> [-r <rates>] [-from EUR -to USD] [-summary]

  Converts every transaction of a "date,amount" file with the rate of its day,
  and writes one "date,from_amount,exchange_rate,to_amount" row per transaction.
  A transaction without a rate on its day is reported in its row, it does not
  stop the conversion.

Usage Examples:
# Converts EUR amounts into USD.
$ fxconv convert -i expenses.csv -o expenses_usd.csv -r rates.csv

# Converts USD amounts into EUR, with rates from a json export.
$ fxconv convert -from USD -to EUR -i income.csv -o - -r ecb.json -rates-format json -rates-path '$.observations[*]'

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	c.rates.SetFlags(f, c.cfg)
	f.StringVar(&c.input, "i", "", "Transactions to convert (date,amount)")
	f.StringVar(&c.output, "o", "", "Converted rows, '-' for stdout")
	f.StringVar(&c.from, "from", eurToUSD.from, "Currency of the transactions")
	f.StringVar(&c.to, "to", eurToUSD.to, "Currency to convert to")
	f.BoolVar(&c.summary, "summary", false, "Print a summary of the conversion")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" || c.output == "" {
		fmt.Fprintln(os.Stderr, "-i and -o flags are required")
		return subcommands.ExitUsageError
	}
	p, err := parsePair(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rates, err := c.rates.loadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates %q: %v\n", c.rates.file, err)
		return subcommands.ExitFailure
	}
	c.log.Debug().Str("file", c.rates.file).Int("days", rates.Len()).Msg("rates loaded")

	if p == usdToEUR {
		return convertFile(c, rates.Invert())
	}
	return convertFile(c, rates)
}

// convertFile converts the transactions of the input file into the output file.
func convertFile[N, D fxconv.Unit](c *convertCmd, rates *fxconv.DailyRates[N, D]) subcommands.ExitStatus {
	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transactions %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := fxconv.DecodeTransactionsCSV[D](in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	rows := fxconv.ConvertAll(rates, txs)
	for _, row := range rows {
		if !row.OK() {
			c.log.Warn().Stringer("date", row.Date).Stringer("amount", row.From).Err(row.Err).Msg("transaction not converted")
		}
	}

	if err := writeOutput(c.output, func(w io.Writer) error { return fxconv.EncodeRowsCSV(w, rows) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing rows %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	s := fxconv.Summarize(rows)
	c.log.Info().Int("rows", s.Rows).Int("converted", s.Converted).Int("missing", len(s.Missing)).Str("output", c.output).Msg("conversion done")

	if c.summary {
		printMarkdown(renderer.ConversionMarkdown(rates, rows))
	}
	return subcommands.ExitSuccess
}

// writeOutput calls write on the named file, or stdout for "-".
func writeOutput(name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
