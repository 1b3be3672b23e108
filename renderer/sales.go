package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fxconv/trades"
)

// SalesMarkdown renders reconciled sales, with the lots each one closed and
// the totals per currency.
func SalesMarkdown(sales []trades.Sale) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Sales\n\n")
	fmt.Fprintln(&b, "| Date | Symbol | Currency | Quantity | Proceeds | Basis | Gain |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			s.Date, s.Symbol, s.Currency.Code(),
			number(s.Quantity()), fixed(s.Proceeds), fixed(s.Basis()), signed(s.Gain()))
	}

	fmt.Fprint(&b, "\n## Totals\n\n")
	fmt.Fprintln(&b, "| Currency | Proceeds | Basis | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, t := range totals(sales) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", t.currency, fixed(t.proceeds), fixed(t.basis), signed(t.proceeds-t.basis))
	}

	for _, s := range sales {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprintf(w, "\n## %s sold on %s\n\n", s.Symbol, s.Date)
			fmt.Fprintln(w, "| Acquired | Quantity | Unit Price | Basis |")
			fmt.Fprintln(w, "|:---|---:|---:|---:|")
			for _, lot := range s.Lots {
				fmt.Fprintf(w, "| %s | %s | %s | %s |\n", lot.Date, number(lot.Quantity), number(lot.UnitPrice), fixed(lot.Basis))
			}
			return len(s.Lots) > 0
		})
	}

	return b.String()
}

type currencyTotal struct {
	currency        string
	proceeds, basis float64
}

// totals sums proceeds and basis per currency, in order of first appearance.
func totals(sales []trades.Sale) []currencyTotal {
	var ts []currencyTotal
	index := make(map[string]int)
	for _, s := range sales {
		code := s.Currency.Code()
		i, ok := index[code]
		if !ok {
			i = len(ts)
			index[code] = i
			ts = append(ts, currencyTotal{currency: code})
		}
		ts[i].proceeds += s.Proceeds
		ts[i].basis += s.Basis()
	}
	return ts
}
