// Package latex renders canonical version-table rows as a LaTeX table
// environment using booktabs rules.
package latex

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/vertab/pkg/rows"
)

// Column layout: three wrapped, left aligned text columns followed by two
// right aligned count columns.
const (
	textColumn  = `>{\raggedright\arraybackslash\hangindent=2em}p{3.5cm}`
	countColumn = `>{\raggedleft\arraybackslash}p{2cm}`
	placement   = "[hbt!]"
)

// ColumnSpec is the tabular column specification.
var ColumnSpec = strings.Join([]string{textColumn, textColumn, textColumn, countColumn, countColumn}, " ")

// Headers are the bold column titles.
var Headers = []string{"Client", "Current Version", "Latest Version", "Number of Callsites", "Reachable Callsites"}

// Defaults used by the command line when nothing is configured.
const (
	DefaultCaption = "Clients, libraries, versions, and counts of callsites reaching newly-added exceptions"
	DefaultLabel   = "tab:version-changes"
)

// Options controls the surrounding table environment.
type Options struct {
	// Caption and Label are written verbatim; escape them first if they
	// come from untrusted input.
	Caption string
	Label   string
	// Wide selects table* (spanning both columns) instead of table.
	Wide bool
}

// escaper substitutes in a single pass, so the braces it introduces are
// never escaped again.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes s safe to use as LaTeX text.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}

// FormatCount renders a count as a plain integer, truncating any fraction.
// Counts beyond the int64 range are printed in full.
func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	t := math.Trunc(v)
	if t == 0 {
		return "0"
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

// Render produces the complete table environment for rs. Rows are written
// in the given order; \addlinespace separates runs of rows that share a
// (LibraryOld, LibraryNew) pair.
func Render(rs []rows.Row, opts Options) string {
	env := "table"
	if opts.Wide {
		env = "table*"
	}

	headers := make([]string, len(Headers))
	for i, h := range Headers {
		headers[i] = `\textbf{` + h + `}`
	}

	p := newPrinter()
	p.begin(env, placement)
	p.line(`\centering`)
	p.command("caption", opts.Caption)
	p.command("label", opts.Label)
	p.begin("tabular", "{"+ColumnSpec+"}")
	p.line(`\toprule`)
	p.tableRow(headers...)
	p.line(`\midrule`)

	for i, r := range rs {
		if i > 0 && !r.SameGroup(rs[i-1]) {
			p.line(`\addlinespace`)
		}
		p.tableRow(
			Escape(r.ClientName),
			Escape(r.LibraryOld),
			Escape(r.LibraryNew),
			FormatCount(r.NumCallsites),
			FormatCount(r.Reachable),
		)
	}

	p.line(`\bottomrule`)
	p.end("tabular")
	p.end(env)
	return p.String()
}
