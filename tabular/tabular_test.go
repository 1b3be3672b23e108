package tabular_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/fxconv/tabular"
)

func TestReader_HeaderDriven(t *testing.T) {
	feed := "extra,rate,date\nx, 0.8 ,2021-01-01\n\ny,0.9,2021-01-02\n"
	r, err := tabular.NewReader(strings.NewReader(feed), "date", "rate")
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Line)
	assert.Equal(t, "2021-01-01", rec.Get("date"))
	assert.Equal(t, "0.8", rec.Get("rate"))
	assert.Equal(t, "", rec.Get("unknown"))

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Line)
	assert.Equal(t, "0.9", rec.Get("rate"))

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_MissingColumn(t *testing.T) {
	_, err := tabular.NewReader(strings.NewReader("date,amount\n"), "date", "rate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"rate"`)
}

func TestReader_Empty(t *testing.T) {
	_, err := tabular.NewReader(strings.NewReader(""), "date")
	assert.Error(t, err)
}

func TestReader_ShortRecord(t *testing.T) {
	r, err := tabular.NewReader(strings.NewReader("date,rate\n2021-01-01\n"), "date", "rate")
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "", rec.Get("rate"))
}

func TestRecord_Errorf(t *testing.T) {
	r, err := tabular.NewReader(strings.NewReader("date\nbad\n"), "date")
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)

	cause := errors.New("boom")
	err = rec.Errorf("invalid %q: %w", rec.Get("date"), cause)
	assert.EqualError(t, err, `line 2: invalid "bad": boom`)
	assert.ErrorIs(t, err, cause)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := tabular.NewWriter(&buf, "date", "amount")
	require.NoError(t, err)
	require.NoError(t, w.Write("2021-01-01", "1.00"))
	require.NoError(t, w.Flush())
	assert.Equal(t, "date,amount\n2021-01-01,1.00\n", buf.String())
}
