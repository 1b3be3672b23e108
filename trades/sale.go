package trades

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/etnz/fxconv"
	"github.com/etnz/fxconv/date"
)

var (
	ErrNoSales              = errors.New("no sales found")
	ErrUnmatchedClosedLot   = errors.New("unmatched closed lot")
	ErrLotClosedAfterTrade  = errors.New("lot closed after trade")
	ErrLotSumMismatch       = errors.New("sum of closed lots does not match trade")
	ErrTradeMissingProceeds = errors.New("trade missing proceeds")
)

// SaleError locates a reconciliation failure in the sale it occurred in.
type SaleError struct {
	Segment int    // 0-based index of the sale in the filtered records
	Symbol  string // symbol of the sale's trade
	Err     error
}

func (e *SaleError) Error() string {
	return fmt.Sprintf("sale #%d (%s): %v", e.Segment, e.Symbol, e.Err)
}

func (e *SaleError) Unwrap() error { return e.Err }

// ClosedLot is the part of a sale that closed a given acquisition.
type ClosedLot struct {
	Date      date.Date `json:"date"`
	Quantity  float64   `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Basis     float64   `json:"basis"`
}

// Sale is a realized disposal, with the lots it closed in report order.
type Sale struct {
	Currency  fxconv.Currency `json:"currency"`
	Symbol    string          `json:"symbol"`
	Date      date.Date       `json:"date"`
	UnitPrice float64         `json:"unit_price"`
	Proceeds  float64         `json:"proceeds"`
	Lots      []ClosedLot     `json:"lots"`
}

// Quantity returns the total quantity of the lots.
func (s Sale) Quantity() float64 { return sum(s.Lots, func(l ClosedLot) float64 { return l.Quantity }) }

// Basis returns the total cost basis of the lots.
func (s Sale) Basis() float64 { return sum(s.Lots, func(l ClosedLot) float64 { return l.Basis }) }

// Gain returns the realized gain of the sale.
func (s Sale) Gain() float64 { return s.Proceeds - s.Basis() }

// Reconciler groups filtered trade records into sales.
type Reconciler struct {
	tolerance float64
	log       zerolog.Logger
}

// NewReconciler returns a Reconciler logging to log.
//
// With a zero tolerance, lot sums must equal the trade's quantity and basis
// exactly. A positive tolerance compares compensated sums within that absolute
// difference instead.
func NewReconciler(log zerolog.Logger, tolerance float64) *Reconciler {
	return &Reconciler{
		tolerance: tolerance,
		log:       log.With().Str("component", "reconciler").Logger(),
	}
}

// Reconcile groups records with exact lot sums and no logging.
func Reconcile(records []Record) ([]Sale, error) {
	return NewReconciler(zerolog.Nop(), 0).Reconcile(records)
}

// Reconcile groups records, as returned by Filter, into sales.
//
// Each Trade record starts a sale that owns the records following it, up to the
// next Trade. Any invalid sale fails the whole reconciliation.
func (r *Reconciler) Reconcile(records []Record) ([]Sale, error) {
	segments, err := segment(records)
	if err != nil {
		return nil, err
	}
	sales := make([]Sale, 0, len(segments))
	for i, seg := range segments {
		sale, err := r.sale(seg)
		if err != nil {
			return nil, &SaleError{Segment: i, Symbol: seg[0].Symbol, Err: err}
		}
		sales = append(sales, sale)
	}
	r.log.Debug().Int("records", len(records)).Int("sales", len(sales)).Msg("sales reconciled")
	return sales, nil
}

// segment splits records at each Trade record.
func segment(records []Record) ([][]Record, error) {
	var starts []int
	for i, rec := range records {
		if rec.Kind == KindTrade {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil, ErrNoSales
	}
	if starts[0] != 0 {
		return nil, fmt.Errorf("%s on %s before any trade: %w", records[0].Symbol, records[0].Date, ErrUnmatchedClosedLot)
	}
	segments := make([][]Record, len(starts))
	for i, start := range starts {
		end := len(records)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		segments[i] = records[start:end]
	}
	return segments, nil
}

// sale builds the sale of a segment: one trade followed by its lots.
func (r *Reconciler) sale(seg []Record) (Sale, error) {
	trade := seg[0]
	lots := make([]ClosedLot, 0, len(seg)-1)
	for _, rec := range seg[1:] {
		lot, err := closedLot(rec, trade)
		if err != nil {
			return Sale{}, err
		}
		lots = append(lots, lot)
	}

	if !r.equal(lots, func(l ClosedLot) float64 { return l.Quantity }, trade.Quantity) {
		return Sale{}, fmt.Errorf("quantity %v: %w", trade.Quantity, ErrLotSumMismatch)
	}
	if !r.equal(lots, func(l ClosedLot) float64 { return l.Basis }, trade.Basis) {
		return Sale{}, fmt.Errorf("basis %v: %w", trade.Basis, ErrLotSumMismatch)
	}
	if trade.Proceeds == nil {
		return Sale{}, ErrTradeMissingProceeds
	}

	cur := fxconv.ParseCurrency(trade.Currency)
	if cur.IsOther() {
		r.log.Warn().Str("currency", cur.Code()).Bool("iso", cur.IsISO()).Str("symbol", trade.Symbol).Msg("unsupported currency kept as is")
	}
	return Sale{
		Currency:  cur,
		Symbol:    trade.Symbol,
		Date:      trade.Date,
		UnitPrice: trade.UnitPrice,
		Proceeds:  *trade.Proceeds,
		Lots:      lots,
	}, nil
}

func closedLot(rec, trade Record) (ClosedLot, error) {
	if rec.Symbol != trade.Symbol || rec.Currency != trade.Currency {
		return ClosedLot{}, fmt.Errorf("%s %s lot under %s %s trade: %w", rec.Symbol, rec.Currency, trade.Symbol, trade.Currency, ErrUnmatchedClosedLot)
	}
	if rec.Date.After(trade.Date) {
		return ClosedLot{}, fmt.Errorf("lot on %s, trade on %s: %w", rec.Date, trade.Date, ErrLotClosedAfterTrade)
	}
	return ClosedLot{
		Date:      rec.Date,
		Quantity:  rec.Quantity,
		UnitPrice: rec.UnitPrice,
		Basis:     rec.Basis,
	}, nil
}

// equal compares the sum of a lot field to want.
func (r *Reconciler) equal(lots []ClosedLot, field func(ClosedLot) float64, want float64) bool {
	if r.tolerance <= 0 {
		return sum(lots, field) == want
	}
	values := make([]float64, len(lots))
	for i, l := range lots {
		values[i] = field(l)
	}
	return scalar.EqualWithinAbs(floats.SumCompensated(values), want, r.tolerance)
}

// sum adds a lot field left to right.
func sum(lots []ClosedLot, field func(ClosedLot) float64) float64 {
	var s float64
	for _, l := range lots {
		s += field(l)
	}
	return s
}
