// Package resolve maps the logical fields of the version table onto the
// actual column names of an input file.
//
// Matching is case and whitespace insensitive and runs in two passes: an
// exact pass over every candidate, then a substring pass where a candidate
// contained in a header name counts as a match.
package resolve

import (
	"strings"
)

// Field is one of the five logical output columns.
type Field int

// Logical fields, in output order.
const (
	ClientName Field = iota
	LibraryOld
	LibraryNew
	NumCallsites
	Reachable
)

// Fields lists every logical field in output order.
var Fields = []Field{ClientName, LibraryOld, LibraryNew, NumCallsites, Reachable}

var fieldNames = [...]string{"ClientName", "LibraryOld", "LibraryNew", "NumCallsites", "Reachable"}

var fieldKeys = [...]string{"client_name", "library_old", "library_new", "num_callsites", "reachable"}

// String returns the canonical field name, e.g. "ClientName".
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(?)"
	}
	return fieldNames[f]
}

// Key returns the snake_case configuration key for the field.
func (f Field) Key() string {
	if f < 0 || int(f) >= len(fieldKeys) {
		return ""
	}
	return fieldKeys[f]
}

// Candidates holds the ordered header names tried for each field.
type Candidates map[Field][]string

// DefaultCandidates returns the built-in header spellings.
func DefaultCandidates() Candidates {
	return Candidates{
		ClientName:   {"ClientName", "Client", "Client Name"},
		LibraryOld:   {"LibraryOld", "OldVersion", "Current Version", "Library Old"},
		LibraryNew:   {"LibraryNew", "NewVersion", "Latest Version", "Library New"},
		NumCallsites: {"Number of Times the Library is Used in the Client", "Number of Callsites", "NumCallsites"},
		Reachable:    {"NumberOfMatchedMethods", "Reachable Callsites", "Reachable"},
	}
}

// Prepend returns a copy of c where extra names are tried before the
// existing candidates of their field.
func (c Candidates) Prepend(extra Candidates) Candidates {
	out := make(Candidates, len(c))
	for _, f := range Fields {
		names := make([]string, 0, len(extra[f])+len(c[f]))
		names = append(names, extra[f]...)
		names = append(names, c[f]...)
		out[f] = names
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Column returns the first header matching one of candidates.
//
// An exact (normalized) match for any candidate wins over a substring match
// for an earlier candidate. Within a pass candidates are tried in order and,
// for each candidate, headers are scanned in order. The header is returned
// verbatim.
func Column(headers, candidates []string) (string, bool) {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = normalize(h)
	}

	for _, cand := range candidates {
		k := normalize(cand)
		if k == "" {
			continue
		}
		for i, h := range norm {
			if h == k {
				return headers[i], true
			}
		}
	}

	for _, cand := range candidates {
		k := normalize(cand)
		if k == "" {
			continue
		}
		for i, h := range norm {
			if strings.Contains(h, k) {
				return headers[i], true
			}
		}
	}

	return "", false
}

// Resolution is the outcome of resolving every logical field.
type Resolution struct {
	columns map[Field]string
}

// Resolve resolves every field in Fields against headers.
func Resolve(headers []string, cands Candidates) Resolution {
	res := Resolution{columns: make(map[Field]string, len(Fields))}
	for _, f := range Fields {
		if col, ok := Column(headers, cands[f]); ok {
			res.columns[f] = col
		}
	}
	return res
}

// Column returns the header resolved for f.
func (r Resolution) Column(f Field) (string, bool) {
	col, ok := r.columns[f]
	return col, ok
}

// Missing lists the unresolved fields in output order.
func (r Resolution) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if _, ok := r.columns[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// JoinFields renders fields as a comma separated list of their names.
func JoinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
