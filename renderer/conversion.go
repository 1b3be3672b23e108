package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fxconv"
)

// ConversionMarkdown renders the report of a conversion run: what was converted,
// the totals, and the days that had no rate.
func ConversionMarkdown[N, D fxconv.Unit](rates *fxconv.DailyRates[N, D], rows []fxconv.Row[N, D]) string {
	var b strings.Builder
	var n N
	var d D
	s := fxconv.Summarize(rows)

	fmt.Fprintf(&b, "# Conversion from %s to %s\n\n", d.Code(), n.Code())
	if span, ok := rates.Span(); ok {
		fmt.Fprintf(&b, "Rates: %d days from %s to %s\n\n", rates.Len(), span.From, span.To)
	} else {
		fmt.Fprint(&b, "Rates: none\n\n")
	}

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Transactions | Converted | Missing Rate |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", s.Rows, s.Converted, len(s.Missing))

	fmt.Fprint(&b, "## Totals\n\n")
	fmt.Fprintln(&b, "| Currency | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| %s (all transactions) | %s |\n", d.Code(), s.From)
	fmt.Fprintf(&b, "| %s (converted) | %s |\n", n.Code(), s.To)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Missing Exchange Rates\n\n")
		fmt.Fprintln(w, "| Date | Amount |")
		fmt.Fprintln(w, "|:---|---:|")
		missing := false
		for _, row := range rows {
			if row.OK() {
				continue
			}
			missing = true
			fmt.Fprintf(w, "| %s | %s |\n", row.Date, row.From)
		}
		return missing
	})

	return b.String()
}
