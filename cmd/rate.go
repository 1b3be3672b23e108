package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/fxconv"
	"github.com/etnz/fxconv/config"
	"github.com/etnz/fxconv/date"
)

type rateCmd struct {
	cfg *config.Config

	rates  ratesFlags
	day    string
	amount string
	from   string
	to     string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "prints the rate of a day, and optionally converts an amount" }
func (*rateCmd) Usage() string {
	return `fxconv rate -d <YYYY-MM-DD> [-r <rates>] [-amount <amount>] [-from EUR -to USD]

  Prints the exchange rate published on a day. There is no rate on days
  absent from the feed, not even the one of a previous day.

Usage Examples:
$ fxconv rate -d 2021-01-04 -amount 100
2021-01-04: 1.2296 USD/EUR
€ 100.00 = $ 122.96

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	c.rates.SetFlags(f, c.cfg)
	f.StringVar(&c.day, "d", "", "Day of the rate")
	f.StringVar(&c.amount, "amount", "", "Amount to convert, in major units")
	f.StringVar(&c.from, "from", eurToUSD.from, "Currency to convert from")
	f.StringVar(&c.to, "to", eurToUSD.to, "Currency to convert to")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
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
	if p == usdToEUR {
		return printRate(on, c.amount, rates.Invert())
	}
	return printRate(on, c.amount, rates)
}

// printRate prints the rate of a day, and amount converted with it.
func printRate[N, D fxconv.Unit](on date.Date, amount string, rates *fxconv.DailyRates[N, D]) subcommands.ExitStatus {
	rate, ok := rates.DayRate(on)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", on, fxconv.ErrMissingExchangeRate)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", on, rate)

	if amount == "" {
		return subcommands.ExitSuccess
	}
	m, err := fxconv.ParseMoney[D](amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Printf("%s = %s\n", m, rate.Convert(m))
	return subcommands.ExitSuccess
}
