package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears the variables for the test, and again after it, since .env
// files write to the process environment.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	unset(t, "FXCONV_LOG_LEVEL", "FXCONV_LOG_PRETTY", "FXCONV_RATES_FILE", "FXCONV_RATES_FORMAT", "FXCONV_RATES_JSONPATH", "FXCONV_LOT_TOLERANCE")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:      "info",
		LogPretty:     true,
		RatesFile:     "rates.csv",
		RatesFormat:   "csv",
		RatesJSONPath: "$[*]",
		LotTolerance:  0,
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FXCONV_RATES_FORMAT", "json")
	t.Setenv("FXCONV_LOT_TOLERANCE", "0.001")
	t.Setenv("FXCONV_LOG_PRETTY", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.RatesFormat)
	assert.Equal(t, 0.001, cfg.LotTolerance)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_EnvFile(t *testing.T) {
	unset(t, "FXCONV_RATES_FILE", "FXCONV_LOG_LEVEL")
	t.Setenv("FXCONV_LOG_LEVEL", "warn")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("FXCONV_RATES_FILE=ecb.json\nFXCONV_LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(env)
	require.NoError(t, err)
	assert.Equal(t, "ecb.json", cfg.RatesFile)
	// the environment wins over the file.
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("FXCONV_RATES_FORMAT", "xml")
	_, err := Load(missing)
	assert.ErrorContains(t, err, "FXCONV_RATES_FORMAT")

	t.Setenv("FXCONV_RATES_FORMAT", "csv")
	t.Setenv("FXCONV_LOT_TOLERANCE", "-1")
	_, err = Load(missing)
	assert.ErrorContains(t, err, "FXCONV_LOT_TOLERANCE")

	t.Setenv("FXCONV_LOT_TOLERANCE", "abc")
	_, err = Load(missing)
	assert.ErrorContains(t, err, "failed to process config")
}
