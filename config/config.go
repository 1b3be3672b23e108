// Package config reads the defaults of the command line from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable, e.g. FXCONV_RATES_FILE.
const Prefix = "fxconv"

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`

	RatesFile     string `envconfig:"RATES_FILE" default:"rates.csv"`
	RatesFormat   string `envconfig:"RATES_FORMAT" default:"csv"` // csv or json
	RatesJSONPath string `envconfig:"RATES_JSONPATH" default:"$[*]"`

	// LotTolerance is the absolute difference allowed between a trade and the
	// sum of its lots. Zero requires exact sums.
	LotTolerance float64 `envconfig:"LOT_TOLERANCE" default:"0"`
}

// Load reads envFiles (".env" when none is given) into the environment, then
// the configuration from the environment. Missing files are ignored, and
// variables already set take precedence over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.RatesFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("invalid FXCONV_RATES_FORMAT %q: want csv or json", c.RatesFormat)
	}
	if c.LotTolerance < 0 {
		return fmt.Errorf("invalid FXCONV_LOT_TOLERANCE %v: must not be negative", c.LotTolerance)
	}
	return nil
}
