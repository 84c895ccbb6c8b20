// Package rows projects a dataset onto the canonical five-field rows of the
// version table and orders them.
package rows

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/leapstack-labs/vertab/pkg/dataset"
	"github.com/leapstack-labs/vertab/pkg/resolve"
)

// Row is one canonical table row. The counts are never negative.
type Row struct {
	ClientName   string
	LibraryOld   string
	LibraryNew   string
	NumCallsites float64
	Reachable    float64
}

// SameGroup reports whether r and o share the (LibraryOld, LibraryNew) pair.
func (r Row) SameGroup(o Row) bool {
	return r.LibraryOld == o.LibraryOld && r.LibraryNew == o.LibraryNew
}

// Coerce converts a count cell to a non-negative number. Missing and
// unparseable cells (including "1,234"), NaN, infinities and negative values
// all become 0.
func Coerce(c dataset.Cell) float64 {
	v, ok := c.Float()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Normalize builds one Row per dataset record. Fields without a resolved
// column are left empty or zero.
func Normalize(ds *dataset.Dataset, res resolve.Resolution) []Row {
	column := func(f resolve.Field) []dataset.Cell {
		name, ok := res.Column(f)
		if !ok {
			return nil
		}
		cells, _ := ds.Column(name)
		return cells
	}
	cell := func(cells []dataset.Cell, i int) dataset.Cell {
		if i < len(cells) {
			return cells[i]
		}
		return dataset.Missing
	}

	client := column(resolve.ClientName)
	oldv := column(resolve.LibraryOld)
	newv := column(resolve.LibraryNew)
	calls := column(resolve.NumCallsites)
	reach := column(resolve.Reachable)

	out := make([]Row, ds.Len())
	for i := range out {
		out[i] = Row{
			ClientName:   cell(client, i).String(),
			LibraryOld:   cell(oldv, i).String(),
			LibraryNew:   cell(newv, i).String(),
			NumCallsites: Coerce(cell(calls, i)),
			Reachable:    Coerce(cell(reach, i)),
		}
	}
	return out
}

// Compare orders rows by Reachable desc, NumCallsites desc, then
// LibraryOld, LibraryNew and ClientName ascending.
func Compare(a, b Row) int {
	if c := cmp.Compare(b.Reachable, a.Reachable); c != 0 {
		return c
	}
	if c := cmp.Compare(b.NumCallsites, a.NumCallsites); c != 0 {
		return c
	}
	if c := strings.Compare(a.LibraryOld, b.LibraryOld); c != 0 {
		return c
	}
	if c := strings.Compare(a.LibraryNew, b.LibraryNew); c != 0 {
		return c
	}
	return strings.Compare(a.ClientName, b.ClientName)
}

// Sort orders rows in place with Compare.
func Sort(rows []Row) {
	slices.SortStableFunc(rows, Compare)
}

// Top returns the first n rows. n <= 0 keeps every row.
func Top(rows []Row, n int) []Row {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
