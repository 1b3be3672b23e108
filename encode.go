package fxconv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fxconv/date"
	"github.com/etnz/fxconv/tabular"
)

// Feed files are flat CSV with a header line:
//
//	rates:        date,rate
//	transactions: date,amount
//	output rows:  date,from_amount,exchange_rate,to_amount
//
// Any malformed line aborts decoding, with an error naming the line.

// DecodeRatesCSV reads a rate feed with "date" and "rate" columns.
// A date appearing twice keeps its last rate.
func DecodeRatesCSV[N, D Unit](r io.Reader) (*DailyRates[N, D], error) {
	tr, err := tabular.NewReader(r, "date", "rate")
	if err != nil {
		return nil, fmt.Errorf("rate feed: %w", err)
	}
	rates := new(DailyRates[N, D])
	for {
		rec, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return rates, nil
		}
		if err != nil {
			return nil, fmt.Errorf("rate feed: %w", err)
		}
		on, err := date.Parse(rec.Get("date"))
		if err != nil {
			return nil, fmt.Errorf("rate feed: %w", rec.Errorf("%w", err))
		}
		rate, err := ParseExchangeRate[N, D](rec.Get("rate"))
		if err != nil {
			return nil, fmt.Errorf("rate feed: %w", rec.Errorf("%w", err))
		}
		rates.set(on, rate)
	}
}

// JSONFeed locates rate observations inside a JSON document.
type JSONFeed struct {
	Path      string // JSONPath selecting the list of observations, e.g. "$.observations[*]"
	DateField string // field holding the ISO date of an observation
	RateField string // field holding the rate, as a number or a string
}

// DefaultJSONFeed reads a top level array of {"date": ..., "rate": ...} objects.
var DefaultJSONFeed = JSONFeed{Path: "$[*]", DateField: "date", RateField: "rate"}

// DecodeRatesJSON reads the rate observations selected by feed in a JSON document.
func DecodeRatesJSON[N, D Unit](r io.Reader, feed JSONFeed) (*DailyRates[N, D], error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("rate feed: invalid json: %w", err)
	}
	selected, err := jsonpath.Get(feed.Path, doc)
	if err != nil {
		return nil, fmt.Errorf("rate feed: evaluating %q: %w", feed.Path, err)
	}
	items, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("rate feed: %q does not select a list of observations", feed.Path)
	}
	// a path selecting the array itself, rather than its elements, gives a list of one list.
	if len(items) == 1 {
		if inner, ok := items[0].([]any); ok {
			items = inner
		}
	}

	rates := new(DailyRates[N, D])
	for i, item := range items {
		obs, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("rate feed: observation #%d is not an object", i)
		}
		str, _ := obs[feed.DateField].(string)
		on, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("rate feed: observation #%d: %w", i, err)
		}
		var rate ExchangeRate[N, D]
		switch v := obs[feed.RateField].(type) {
		case float64:
			rate, err = ParseExchangeRate[N, D](strconv.FormatFloat(v, 'g', -1, 64))
		case string:
			rate, err = ParseExchangeRate[N, D](v)
		default:
			err = fmt.Errorf("missing %q field", feed.RateField)
		}
		if err != nil {
			return nil, fmt.Errorf("rate feed: observation #%d: %w", i, err)
		}
		rates.set(on, rate)
	}
	return rates, nil
}

// EncodeRatesCSV writes rates as a "date,rate" feed, in chronological order.
func EncodeRatesCSV[N, D Unit](w io.Writer, rates *DailyRates[N, D]) error {
	tw, err := tabular.NewWriter(w, "date", "rate")
	if err != nil {
		return err
	}
	for on, rate := range rates.All() {
		if err := tw.Write(on.String(), rate.formatRate()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// DecodeTransactionsCSV reads a transaction feed with "date" and "amount" columns.
// Amounts are in major units and go through FromFloat, so they are truncated
// to the minor unit.
func DecodeTransactionsCSV[U Unit](r io.Reader) ([]Transaction[U], error) {
	tr, err := tabular.NewReader(r, "date", "amount")
	if err != nil {
		return nil, fmt.Errorf("transaction feed: %w", err)
	}
	var txs []Transaction[U]
	for {
		rec, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return txs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("transaction feed: %w", err)
		}
		on, err := date.Parse(rec.Get("date"))
		if err != nil {
			return nil, fmt.Errorf("transaction feed: %w", rec.Errorf("%w", err))
		}
		amount, err := strconv.ParseFloat(rec.Get("amount"), 64)
		if err != nil {
			return nil, fmt.Errorf("transaction feed: %w", rec.Errorf("invalid amount %q: %w", rec.Get("amount"), err))
		}
		txs = append(txs, NewTransaction(on, FromFloat[U](amount)))
	}
}

// EncodeRowsCSV writes one line per row, in order.
//
// Amounts are written as major-unit decimals. A row without rate has an empty
// exchange_rate; a failed row has the error text as to_amount.
func EncodeRowsCSV[N, D Unit](w io.Writer, rows []Row[N, D]) error {
	tw, err := tabular.NewWriter(w, "date", "from_amount", "exchange_rate", "to_amount")
	if err != nil {
		return err
	}
	for _, row := range rows {
		var rate, to string
		if row.Rate != nil {
			rate = row.Rate.formatRate()
		}
		if row.OK() {
			to = row.To.MajorString()
		} else {
			to = row.Err.Error()
		}
		if err := tw.Write(row.Date.String(), row.From.MajorString(), rate, to); err != nil {
			return err
		}
	}
	return tw.Flush()
}
