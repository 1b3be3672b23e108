package fxconv

import (
	"math"

	"github.com/Rhymond/go-money"
)

// Unit is a currency used as a type parameter: it has no state, only the rules
// to scale and format amounts of that currency.
//
// Money and ExchangeRate are parameterized by units, so that amounts of
// different currencies are different types and cannot be mixed.
type Unit interface {
	// Code is the ISO-4217 code of the currency.
	Code() string
	// Scale is the number of minor units in one major unit.
	Scale() int64
	// Format returns the human-readable form of an amount in minor units.
	Format(raw int64) string
}

// EUR is the Euro unit.
type EUR struct{}

// USD is the US Dollar unit.
type USD struct{}

func (EUR) Code() string            { return money.EUR }
func (EUR) Scale() int64            { return scaleOf(money.EUR) }
func (EUR) Format(raw int64) string { return formatterOf(money.EUR).Format(raw) }

func (USD) Code() string            { return money.USD }
func (USD) Scale() int64            { return scaleOf(money.USD) }
func (USD) Format(raw int64) string { return formatterOf(money.USD).Format(raw) }

// scaleOf returns 10^fraction for a registered currency.
func scaleOf(code string) int64 {
	return int64(math.Pow10(money.GetCurrency(code).Fraction))
}

// formatterOf returns a formatter writing "<symbol> <major>.<minor>", with no
// thousand separator.
func formatterOf(code string) *money.Formatter {
	cur := money.GetCurrency(code)
	return money.NewFormatter(cur.Fraction, cur.Decimal, "", cur.Grapheme, "$ 1")
}

// Currency is a currency code read from an external feed.
//
// Known codes (USD, EUR) map to their units. Any other code is kept verbatim as
// an "other" currency: unknown codes are never an error.
type Currency struct {
	code  string
	known bool
}

// ParseCurrency parses a currency code. It never fails.
func ParseCurrency(code string) Currency {
	switch code {
	case money.USD, money.EUR:
		return Currency{code: code, known: true}
	}
	return Currency{code: code}
}

// Code returns the currency code as read.
func (c Currency) Code() string { return c.code }

// IsOther reports whether the code is not one of the supported units.
func (c Currency) IsOther() bool { return !c.known }

// IsISO reports whether the code is at least a registered ISO-4217 code.
func (c Currency) IsISO() bool { return money.GetCurrency(c.code) != nil }

// Is reports whether c is the currency of unit U.
func Is[U Unit](c Currency) bool {
	var u U
	return c.known && c.code == u.Code()
}

func (c Currency) String() string {
	if c.known {
		return c.code
	}
	return "Other(" + c.code + ")"
}

// MarshalText writes the code as read.
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.code), nil }

// UnmarshalText parses a currency code.
func (c *Currency) UnmarshalText(b []byte) error {
	*c = ParseCurrency(string(b))
	return nil
}
