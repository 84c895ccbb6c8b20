// Package dataset holds the in-memory table that vertab reads its input into.
//
// A Dataset is an ordered list of named columns of Cells. It is built once by
// one of the loaders and never modified afterwards; header names are cleaned
// of byte order marks and surrounding whitespace on the way in.
package dataset

import "strings"

const bom = "\ufeff"

// Dataset is an immutable, column-oriented table.
type Dataset struct {
	headers []string
	columns [][]Cell
	rows    int
}

// New builds a Dataset from a header row and data records. Records shorter
// than the header are padded with missing cells, extra fields are dropped.
func New(header []string, records [][]string) *Dataset {
	d := &Dataset{
		headers: make([]string, len(header)),
		columns: make([][]Cell, len(header)),
		rows:    len(records),
	}
	for i, h := range header {
		d.headers[i] = NormalizeHeader(h)
		d.columns[i] = make([]Cell, len(records))
	}
	for r, rec := range records {
		for c := range d.headers {
			if c < len(rec) {
				d.columns[c][r] = ParseCell(rec[c])
			}
		}
	}
	return d
}

// NormalizeHeader strips BOM characters and surrounding whitespace.
func NormalizeHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, bom, ""))
}

// Headers returns a copy of the column names in order.
func (d *Dataset) Headers() []string {
	out := make([]string, len(d.headers))
	copy(out, d.headers)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.headers) }

// Column returns the cells of the first column named name.
func (d *Dataset) Column(name string) ([]Cell, bool) {
	for i, h := range d.headers {
		if h == name {
			return d.columns[i], true
		}
	}
	return nil, false
}
