package fxconv

import (
	"fmt"
	"math"
	"strconv"
)

// ExchangeRate converts amounts of currency D (denominator) into currency N
// (numerator). Both currencies are part of the type, so a rate can never be
// applied to an amount of the wrong currency.
type ExchangeRate[N, D Unit] struct {
	factor float64 // minor units of N per minor unit of D
}

// NewExchangeRate returns the rate for a human quote: 1 D buys rate N.
func NewExchangeRate[N, D Unit](rate float64) ExchangeRate[N, D] {
	var n N
	var d D
	return ExchangeRate[N, D]{factor: rate * float64(n.Scale()) / float64(d.Scale())}
}

// Rate returns the human quote, in major units of N per major unit of D.
func (r ExchangeRate[N, D]) Rate() float64 {
	var n N
	var d D
	return r.factor * float64(d.Scale()) / float64(n.Scale())
}

// Factor returns the multiplier applied to minor units by Convert.
func (r ExchangeRate[N, D]) Factor() float64 { return r.factor }

// Invert returns the reciprocal rate.
//
// Because Convert rounds to the nearest minor unit, converting back with the
// inverted rate may be off by one minor unit.
func (r ExchangeRate[N, D]) Invert() ExchangeRate[D, N] {
	return ExchangeRate[D, N]{factor: 1 / r.factor}
}

// Convert returns the amount of N worth m, rounded to the nearest minor unit
// (half away from zero).
func (r ExchangeRate[N, D]) Convert(m Money[D]) Money[N] {
	return Money[N]{raw: int64(math.Round(float64(m.raw) * r.factor))}
}

// String returns the human quote, e.g. "1.2 USD/EUR".
func (r ExchangeRate[N, D]) String() string {
	var n N
	var d D
	return fmt.Sprintf("%s %s/%s", r.formatRate(), n.Code(), d.Code())
}

// formatRate returns the shortest decimal representation of the human quote.
func (r ExchangeRate[N, D]) formatRate() string {
	return strconv.FormatFloat(r.Rate(), 'f', -1, 64)
}

// ParseExchangeRate parses a human quote, as written in rate feeds.
func ParseExchangeRate[N, D Unit](s string) (ExchangeRate[N, D], error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ExchangeRate[N, D]{}, fmt.Errorf("invalid exchange rate %q: %w", s, err)
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return ExchangeRate[N, D]{}, fmt.Errorf("invalid exchange rate %q: must be a positive number", s)
	}
	return NewExchangeRate[N, D](v), nil
}
