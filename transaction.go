package fxconv

import (
	"fmt"

	"github.com/etnz/fxconv/date"
)

// Transaction is a dated amount of currency U.
type Transaction[U Unit] struct {
	date   date.Date
	amount Money[U]
}

// NewTransaction returns the transaction of amount on day.
func NewTransaction[U Unit](on date.Date, amount Money[U]) Transaction[U] {
	return Transaction[U]{date: on, amount: amount}
}

// Date returns the day of the transaction.
func (t Transaction[U]) Date() date.Date { return t.date }

// Amount returns the amount of the transaction.
func (t Transaction[U]) Amount() Money[U] { return t.amount }

// String returns e.g. "2021-01-01: € 123.45".
func (t Transaction[U]) String() string { return fmt.Sprintf("%s: %s", t.date, t.amount) }
