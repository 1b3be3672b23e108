package fxconv

import (
	"errors"
	"iter"

	"github.com/etnz/fxconv/date"
)

// ErrMissingExchangeRate is returned when no rate is published for a transaction's day.
// It concerns a single transaction, never a whole run.
var ErrMissingExchangeRate = errors.New("missing exchange rate")

// DailyRates is the table of exchange rates for one currency pair, one rate per day.
//
// It is built once, by NewDailyRates or a feed decoder, and read-only afterwards,
// so it can be shared freely.
type DailyRates[N, D Unit] struct {
	factors date.History[float64]
}

// NewDailyRates returns the table holding rates.
func NewDailyRates[N, D Unit](rates map[date.Date]ExchangeRate[N, D]) *DailyRates[N, D] {
	t := new(DailyRates[N, D])
	for on, rate := range rates {
		t.set(on, rate)
	}
	return t
}

// set records the rate of a day, replacing any previous one.
func (t *DailyRates[N, D]) set(on date.Date, rate ExchangeRate[N, D]) {
	t.factors.Append(on, rate.factor)
}

// DayRate returns the rate published exactly on day. There is no fill from
// neighbouring days.
func (t *DailyRates[N, D]) DayRate(day date.Date) (ExchangeRate[N, D], bool) {
	f, ok := t.factors.Get(day)
	return ExchangeRate[N, D]{factor: f}, ok
}

// Convert converts tx using the rate of its day. The date is preserved.
// It fails with ErrMissingExchangeRate when there is no rate that day.
func (t *DailyRates[N, D]) Convert(tx Transaction[D]) (Transaction[N], error) {
	rate, ok := t.DayRate(tx.Date())
	if !ok {
		return Transaction[N]{}, ErrMissingExchangeRate
	}
	return NewTransaction(tx.Date(), rate.Convert(tx.Amount())), nil
}

// Invert returns the table of reciprocal rates, for the opposite conversion.
func (t *DailyRates[N, D]) Invert() *DailyRates[D, N] {
	inv := new(DailyRates[D, N])
	for on, rate := range t.All() {
		inv.set(on, rate.Invert())
	}
	return inv
}

// Len returns the number of days with a rate.
func (t *DailyRates[N, D]) Len() int { return t.factors.Len() }

// Span returns the first and last days with a rate.
func (t *DailyRates[N, D]) Span() (date.Range, bool) { return t.factors.Span() }

// All iterates over the rates in chronological order.
func (t *DailyRates[N, D]) All() iter.Seq2[date.Date, ExchangeRate[N, D]] {
	return func(yield func(date.Date, ExchangeRate[N, D]) bool) {
		for on, f := range t.factors.Values() {
			if !yield(on, ExchangeRate[N, D]{factor: f}) {
				return
			}
		}
	}
}
