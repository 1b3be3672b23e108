// Package fxconv converts dated amounts between currencies using one exchange
// rate per day.
//
// The core functionalities include:
//   - Money: amounts of a currency unit, stored as an exact count of minor
//     units. The unit is part of the type, so that amounts of different
//     currencies cannot be mixed.
//   - Exchange rates: typed rates converting one unit into another, rounded to
//     the nearest minor unit.
//   - Daily rates: a table of rates, one per day, looked up by exact day only.
//   - Conversion: turning a list of transactions into one row per transaction,
//     where a missing rate fails its row only.
//   - Feeds: reading rates and transactions from CSV or JSON, and writing
//     converted rows as CSV.
//
// This package serves as the foundational logic for the `fxconv` command-line
// tool. Broker sale reconciliation lives in the trades package.
package fxconv
