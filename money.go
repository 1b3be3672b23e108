package fxconv

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount of currency U, stored as an exact count of minor units.
//
// Arithmetic and comparisons only exist between amounts of the same unit.
type Money[U Unit] struct {
	raw int64 // minor units
}

// FromMinor returns the Money holding exactly raw minor units.
func FromMinor[U Unit](raw int64) Money[U] { return Money[U]{raw: raw} }

// FromFloat returns the Money for a major-unit amount.
//
// The scaled amount is truncated toward zero, not rounded: 0.29 becomes 28
// cents because 0.29*100 is 28.999999999999996 in float64.
func FromFloat[U Unit](amount float64) Money[U] {
	var u U
	return Money[U]{raw: int64(amount * float64(u.Scale()))}
}

// FromInt returns the Money for a whole number of major units.
func FromInt[U Unit](amount int64) Money[U] {
	var u U
	return Money[U]{raw: amount * u.Scale()}
}

// ParseMoney parses a major-unit decimal string exactly, e.g. "123.45", "-0.5".
// The formatted form returned by String ("€ 123.45") is accepted too.
// More decimals than the unit supports is an error.
func ParseMoney[U Unit](s string) (Money[U], error) {
	var u U
	str := strings.TrimSpace(s)
	neg := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")
	// drop a leading currency symbol, if any.
	if i := strings.IndexAny(str, "0123456789.+-"); i > 0 {
		str = strings.TrimSpace(str[i:])
	}
	if neg && strings.IndexAny(str, "+-") == 0 {
		return Money[U]{}, fmt.Errorf("invalid %s amount %q: more than one sign", u.Code(), s)
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Money[U]{}, fmt.Errorf("invalid %s amount %q: %w", u.Code(), s, err)
	}
	if neg {
		d = d.Neg()
	}
	minor := d.Mul(decimal.NewFromInt(u.Scale()))
	if !minor.IsInteger() {
		return Money[U]{}, fmt.Errorf("invalid %s amount %q: more than %d decimals", u.Code(), s, places(u.Scale()))
	}
	return Money[U]{raw: minor.IntPart()}, nil
}

// Raw returns the amount in minor units.
func (m Money[U]) Raw() int64 { return m.raw }

// Unit returns the currency code of m.
func (m Money[U]) Unit() string {
	var u U
	return u.Code()
}

// Add returns m + n.
func (m Money[U]) Add(n Money[U]) Money[U] { return Money[U]{raw: m.raw + n.raw} }

// Sub returns m - n.
func (m Money[U]) Sub(n Money[U]) Money[U] { return Money[U]{raw: m.raw - n.raw} }

// Neg returns -m.
func (m Money[U]) Neg() Money[U] { return Money[U]{raw: -m.raw} }

// Equal reports whether m and n are the same amount.
func (m Money[U]) Equal(n Money[U]) bool { return m.raw == n.raw }

// LessThan reports whether m < n.
func (m Money[U]) LessThan(n Money[U]) bool { return m.raw < n.raw }

// GreaterThan reports whether m > n.
func (m Money[U]) GreaterThan(n Money[U]) bool { return m.raw > n.raw }

// IsZero reports whether m is zero.
func (m Money[U]) IsZero() bool { return m.raw == 0 }

// IsNegative reports whether m is strictly negative.
func (m Money[U]) IsNegative() bool { return m.raw < 0 }

// Cmp returns -1, 0 or +1 as m is less than, equal to, or greater than n.
func (m Money[U]) Cmp(n Money[U]) int { return cmp(m.raw, n.raw) }

// Major returns the exact amount in major units.
func (m Money[U]) Major() decimal.Decimal { return major[U](m.raw) }

// MarshalText implements encoding.TextMarshaler using MajorString.
func (m Money[U]) MarshalText() ([]byte, error) { return []byte(m.MajorString()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseMoney.
func (m *Money[U]) UnmarshalText(b []byte) error { return m.unmarshal(string(b)) }

func (m *Money[U]) unmarshal(s string) error {
	v, err := ParseMoney[U](s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// String returns the human-readable amount, e.g. "€ 123.45".
func (m Money[U]) String() string {
	var u U
	return u.Format(m.raw)
}

// MajorString returns the major-unit decimal value with the unit's number of
// decimals and no symbol, e.g. "123.45". This is the form written to files.
func (m Money[U]) MajorString() string {
	var u U
	return m.Major().StringFixed(places(u.Scale()))
}

// major returns raw minor units as an exact major-unit decimal.
func major[U Unit](raw int64) decimal.Decimal {
	var u U
	return decimal.NewFromInt(raw).Div(decimal.NewFromInt(u.Scale()))
}

// places returns the number of decimal digits of a power of ten scale.
func places(scale int64) int32 {
	var n int32
	for ; scale > 1; scale /= 10 {
		n++
	}
	return n
}

func cmp(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
