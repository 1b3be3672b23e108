// Package trades reads broker trade reports and reconciles realized sales with
// the lots they closed.
package trades

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/fxconv/date"
	"github.com/etnz/fxconv/tabular"
)

// Kind is the record kind, as found in the DataDiscriminator column.
type Kind string

const (
	KindOrder     Kind = "Order"
	KindTrade     Kind = "Trade"
	KindClosedLot Kind = "ClosedLot"
)

// Record is one line of a broker trade report.
type Record struct {
	Kind      Kind
	Currency  string
	Symbol    string
	Date      date.Date
	Quantity  float64
	UnitPrice float64
	Proceeds  *float64 // nil when the report leaves it empty, as for closed lots
	Basis     float64
}

// IBKR trade report columns.
const (
	colKind      = "DataDiscriminator"
	colCurrency  = "Currency"
	colSymbol    = "Symbol"
	colDateTime  = "Date/Time"
	colQuantity  = "Quantity"
	colUnitPrice = "T. Price"
	colProceeds  = "Proceeds"
	colBasis     = "Basis"
)

// DecodeRecords reads an IBKR trade report. Columns are found by name, others are ignored.
// Any malformed line aborts decoding.
func DecodeRecords(r io.Reader) ([]Record, error) {
	tr, err := tabular.NewReader(r, colKind, colCurrency, colSymbol, colDateTime, colQuantity, colUnitPrice, colProceeds, colBasis)
	if err != nil {
		return nil, fmt.Errorf("trade report: %w", err)
	}
	var records []Record
	for {
		rec, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("trade report: %w", err)
		}
		record, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("trade report: %w", err)
		}
		records = append(records, record)
	}
}

func decodeRecord(rec tabular.Record) (Record, error) {
	r := Record{
		Kind:     Kind(rec.Get(colKind)),
		Currency: rec.Get(colCurrency),
		Symbol:   rec.Get(colSymbol),
	}
	var err error
	if r.Date, err = date.ParseDateTime(rec.Get(colDateTime)); err != nil {
		return r, rec.Errorf("%s: %w", colDateTime, err)
	}
	if r.Quantity, err = parseNumber(rec.Get(colQuantity)); err != nil {
		return r, rec.Errorf("%s: %w", colQuantity, err)
	}
	if r.UnitPrice, err = parseNumber(rec.Get(colUnitPrice)); err != nil {
		return r, rec.Errorf("%s: %w", colUnitPrice, err)
	}
	if r.Basis, err = parseNumber(rec.Get(colBasis)); err != nil {
		return r, rec.Errorf("%s: %w", colBasis, err)
	}
	if s := rec.Get(colProceeds); s != "" {
		p, err := parseNumber(s)
		if err != nil {
			return r, rec.Errorf("%s: %w", colProceeds, err)
		}
		r.Proceeds = &p
	}
	return r, nil
}

// parseNumber parses a report number, which may use ',' as thousands separator.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// Filter returns the records the Reconciler works on: trades and closed lots,
// without purchases (trades with negative proceeds).
func Filter(records []Record) []Record {
	var kept []Record
	for _, r := range records {
		if r.Kind != KindTrade && r.Kind != KindClosedLot {
			continue
		}
		if r.Proceeds != nil && *r.Proceeds < 0 {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
