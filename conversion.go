package fxconv

import (
	"fmt"

	"github.com/etnz/fxconv/date"
)

// Row is the outcome of converting one transaction: the original amount, the
// rate found for its day if any, and either the converted amount or the error.
type Row[N, D Unit] struct {
	Date date.Date
	From Money[D]
	Rate *ExchangeRate[N, D] // nil when no rate was published that day
	To   Money[N]            // valid only when Err is nil
	Err  error
}

// OK reports whether the transaction was converted.
func (r Row[N, D]) OK() bool { return r.Err == nil }

// newRow assembles a Row. A successful conversion must keep the transaction's day.
func newRow[N, D Unit](from Transaction[D], rate *ExchangeRate[N, D], to Transaction[N], err error) Row[N, D] {
	if err == nil && to.Date() != from.Date() {
		panic(fmt.Sprintf("conversion moved transaction from %s to %s", from.Date(), to.Date()))
	}
	row := Row[N, D]{Date: from.Date(), From: from.Amount(), Rate: rate, Err: err}
	if err == nil {
		row.To = to.Amount()
	}
	return row
}

// ConvertRow converts a single transaction.
func ConvertRow[N, D Unit](rates *DailyRates[N, D], tx Transaction[D]) Row[N, D] {
	var rate *ExchangeRate[N, D]
	if r, ok := rates.DayRate(tx.Date()); ok {
		rate = &r
	}
	to, err := rates.Convert(tx)
	return newRow(tx, rate, to, err)
}

// ConvertAll converts every transaction independently and returns exactly one
// row per transaction, in input order. A missing rate fails its row only.
func ConvertAll[N, D Unit](rates *DailyRates[N, D], txs []Transaction[D]) []Row[N, D] {
	rows := make([]Row[N, D], 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, ConvertRow(rates, tx))
	}
	return rows
}

// Summary aggregates a conversion run.
type Summary[N, D Unit] struct {
	Rows      int
	Converted int
	Missing   []date.Date // days of the rows that could not be converted, in input order
	From      Money[D]    // total of all source amounts
	To        Money[N]    // total of the converted amounts
}

// Summarize computes the Summary of rows.
func Summarize[N, D Unit](rows []Row[N, D]) Summary[N, D] {
	var s Summary[N, D]
	for _, row := range rows {
		s.Rows++
		s.From = s.From.Add(row.From)
		if !row.OK() {
			s.Missing = append(s.Missing, row.Date)
			continue
		}
		s.Converted++
		s.To = s.To.Add(row.To)
	}
	return s
}
