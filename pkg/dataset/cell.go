package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Cell holds.
type Kind uint8

// Cell kinds.
const (
	KindMissing Kind = iota
	KindString
	KindInt
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Cell is a single value of a loaded table. The raw text is always kept;
// numeric variants additionally carry the parsed value.
type Cell struct {
	kind Kind
	raw  string
	i    int64
	f    float64
}

// Missing is the empty cell.
var Missing = Cell{}

// ParseCell infers the variant of raw. Blank text is missing, base-10
// integers are KindInt, anything strconv accepts as a float is KindFloat and
// the rest is KindString.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Cell{kind: KindInt, raw: raw, i: i, f: float64(i)}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{kind: KindFloat, raw: raw, f: f}
	}
	return Cell{kind: KindString, raw: raw}
}

// StringCell returns a cell that is never treated as numeric.
func StringCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Missing
	}
	return Cell{kind: KindString, raw: s}
}

// Kind reports the cell variant.
func (c Cell) Kind() Kind { return c.kind }

// IsMissing reports whether the cell is empty.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// String returns the raw text of the cell, or "" when missing.
func (c Cell) String() string { return c.raw }

// Int returns the integer value for KindInt cells.
func (c Cell) Int() (int64, bool) {
	if c.kind != KindInt {
		return 0, false
	}
	return c.i, true
}

// Float returns the numeric value of KindInt and KindFloat cells.
// NaN is reported as not numeric.
func (c Cell) Float() (float64, bool) {
	switch c.kind {
	case KindInt, KindFloat:
		if math.IsNaN(c.f) {
			return 0, false
		}
		return c.f, true
	default:
		return 0, false
	}
}
