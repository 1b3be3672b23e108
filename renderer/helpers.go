package renderer

import (
	"bytes"
	"io"

	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// fixed formats v with two decimals.
func fixed(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

// signed formats v with two decimals and an explicit sign.
func signed(v float64) string {
	if v > 0 {
		return "+" + fixed(v)
	}
	return fixed(v)
}

// number formats v in its shortest exact decimal form.
func number(v float64) string { return decimal.NewFromFloat(v).String() }
