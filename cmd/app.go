// Package cmd implements the fxconv command line.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/fxconv"
	"github.com/etnz/fxconv/config"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *config.Config, log zerolog.Logger) {
	c.Register(&convertCmd{cfg: cfg, log: log.With().Str("command", "convert").Logger()}, "conversions")
	c.Register(&rateCmd{cfg: cfg}, "conversions")

	c.Register(&salesCmd{cfg: cfg, log: log.With().Str("command", "sales").Logger()}, "trades")
}

// ratesFlags are the flags locating the rate feed, shared by the commands that need one.
//
// The feed quotes USD per EUR, one rate per day.
type ratesFlags struct {
	file      string
	format    string
	path      string
	dateField string
	rateField string
}

func (r *ratesFlags) SetFlags(f *flag.FlagSet, cfg *config.Config) {
	f.StringVar(&r.file, "r", cfg.RatesFile, "Rate feed, in USD per EUR")
	f.StringVar(&r.format, "rates-format", cfg.RatesFormat, "Rate feed format (csv, json)")
	f.StringVar(&r.path, "rates-path", cfg.RatesJSONPath, "JSONPath of the observations in a json rate feed")
	f.StringVar(&r.dateField, "rates-date", fxconv.DefaultJSONFeed.DateField, "Date field of a json observation")
	f.StringVar(&r.rateField, "rates-value", fxconv.DefaultJSONFeed.RateField, "Rate field of a json observation")
}

// loadRates decodes the USD per EUR rate feed.
func (r *ratesFlags) loadRates() (*fxconv.DailyRates[fxconv.USD, fxconv.EUR], error) {
	f, err := os.Open(r.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch r.format {
	case "csv":
		return fxconv.DecodeRatesCSV[fxconv.USD, fxconv.EUR](f)
	case "json":
		feed := fxconv.JSONFeed{Path: r.path, DateField: r.dateField, RateField: r.rateField}
		return fxconv.DecodeRatesJSON[fxconv.USD, fxconv.EUR](f, feed)
	}
	return nil, fmt.Errorf("unknown rate feed format %q", r.format)
}

// pair is a supported conversion direction.
type pair struct{ from, to string }

var (
	eurToUSD = pair{"EUR", "USD"}
	usdToEUR = pair{"USD", "EUR"}
)

func parsePair(from, to string) (pair, error) {
	p := pair{from, to}
	switch p {
	case eurToUSD, usdToEUR:
		return p, nil
	}
	return p, fmt.Errorf("unsupported conversion from %q to %q: use EUR and USD", from, to)
}
