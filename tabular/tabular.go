// Package tabular reads header-driven CSV feeds: columns are found by name, so
// their order is free and extra columns are ignored.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fxconv/textenc"
)

// Reader reads records of a CSV feed whose first line is a header.
type Reader struct {
	csv  *csv.Reader
	cols map[string]int
}

// Record is one data line of a feed.
type Record struct {
	Line   int // 1-based line number in the feed, for error messages
	fields []string
	cols   map[string]int
}

// NewReader reads the header of r and checks that every required column is present.
// The input encoding is detected and decoded to UTF-8.
func NewReader(r io.Reader, required ...string) (*Reader, error) {
	utf8r, err := textenc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}
	cr := csv.NewReader(utf8r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header line")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if name = strings.TrimSpace(name); name != "" {
			if _, dup := cols[name]; !dup {
				cols[name] = i
			}
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing column(s) %q in header %q", missing, header)
	}
	return &Reader{csv: cr, cols: cols}, nil
}

// Next returns the next record, or io.EOF at the end of the feed.
// Blank lines are skipped.
func (r *Reader) Next() (Record, error) {
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("read csv: %w", err)
	}
	line, _ := r.csv.FieldPos(0)
	return Record{Line: line, fields: fields, cols: r.cols}, nil
}

// Get returns the trimmed value of column name, or "" when the record is too short.
func (rec Record) Get(name string) string {
	i, ok := rec.cols[name]
	if !ok || i >= len(rec.fields) {
		return ""
	}
	return strings.TrimSpace(rec.fields[i])
}

// Errorf returns an error located at the record's line.
func (rec Record) Errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{rec.Line}, args...)...)
}

// Writer writes a CSV feed with a fixed header.
type Writer struct {
	csv *csv.Writer
}

// NewWriter writes header to w and returns a Writer for the data lines.
func NewWriter(w io.Writer, header ...string) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Writer{csv: cw}, nil
}

// Write writes one data line.
func (w *Writer) Write(fields ...string) error { return w.csv.Write(fields) }

// Flush flushes buffered lines and reports any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
