package fxconv

import "github.com/etnz/fxconv/date"

// USC is a test unit counting US cents as major units (scale 1).
type USC struct{}

func (USC) Code() string            { return "USC" }
func (USC) Scale() int64            { return 1 }
func (USC) Format(raw int64) string { panic("not implemented") }

// eur is a helper for test to create euro money from a major-unit constant.
func eur(v float64) Money[EUR] { return FromFloat[EUR](v) }

// usd is a helper for test to create dollar money from a major-unit constant.
func usd(v float64) Money[USD] { return FromFloat[USD](v) }

// day is a helper for test to create dates from ISO strings.
func day(s string) date.Date { return date.MustParse(s) }

// eurPerUSD returns a table of EUR per USD rates for tests.
func eurPerUSD(rates map[string]float64) *DailyRates[EUR, USD] {
	m := make(map[date.Date]ExchangeRate[EUR, USD], len(rates))
	for on, r := range rates {
		m[day(on)] = NewExchangeRate[EUR, USD](r)
	}
	return NewDailyRates(m)
}
