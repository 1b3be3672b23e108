package trades

import "github.com/etnz/fxconv/date"

// day is a helper for test to create dates from ISO strings.
func day(s string) date.Date { return date.MustParse(s) }

// proceeds is a helper for test to set the optional proceeds of a record.
func proceeds(v float64) *float64 { return &v }

// trade is a helper for test to create a USD trade record of symbol TST.
func trade(on string, quantity, price, p, basis float64) Record {
	return Record{Kind: KindTrade, Currency: "USD", Symbol: "TST", Date: day(on), Quantity: quantity, UnitPrice: price, Proceeds: proceeds(p), Basis: basis}
}

// lot is a helper for test to create a USD closed lot record of symbol TST.
func lot(on string, quantity, price, basis float64) Record {
	return Record{Kind: KindClosedLot, Currency: "USD", Symbol: "TST", Date: day(on), Quantity: quantity, UnitPrice: price, Basis: basis}
}
