package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	testCases := []struct {
		level         string
		expectedLevel zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			New(Config{Level: tc.level})
			assert.Equal(t, tc.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "info"})
	log.Info().Int("rows", 3).Msg("converted")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"rows":3`)
	assert.Contains(t, out, `"message":"converted"`)
	assert.Contains(t, out, `"time":`)
	assert.NotContains(t, out, "hidden")
}

func TestNewWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "debug", Pretty: true})
	log.Debug().Str("file", "rates.csv").Msg("loading rates")

	out := buf.String()
	assert.Contains(t, out, "loading rates")
	assert.Contains(t, out, "file=")
	assert.NotContains(t, out, `"message"`)
}
