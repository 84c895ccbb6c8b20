// Package report wires the vertab pipeline together: load the input, resolve
// its columns, normalize and rank the rows and render the LaTeX table.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/vertab/pkg/dataset"
	"github.com/leapstack-labs/vertab/pkg/latex"
	"github.com/leapstack-labs/vertab/pkg/resolve"
	"github.com/leapstack-labs/vertab/pkg/rows"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("CSV not found")

// DefaultTop is the default number of rows kept.
const DefaultTop = 15

// Options configures a report run.
type Options struct {
	// Top keeps only the first Top rows after sorting; <= 0 keeps all.
	Top int
	// Candidates overrides the header names tried per field. Nil means
	// resolve.DefaultCandidates.
	Candidates resolve.Candidates
	Table      latex.Options
}

// Report is the result of one pipeline run.
type Report struct {
	Headers    []string
	Resolution resolve.Resolution
	// Total is the number of rows before truncation.
	Total int
	// Rows are sorted and truncated.
	Rows []rows.Row
}

// Load checks that path exists and reads it into a Dataset.
func Load(ctx context.Context, path string, logger *slog.Logger) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return dataset.Load(path, logger)
}

// Build resolves, normalizes, sorts and truncates ds. Unresolved fields are
// reported as a single warning and filled with empty values.
func Build(ds *dataset.Dataset, opts Options, logger *slog.Logger) *Report {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cands := opts.Candidates
	if cands == nil {
		cands = resolve.DefaultCandidates()
	}

	headers := ds.Headers()
	res := resolve.Resolve(headers, cands)
	if missing := res.Missing(); len(missing) > 0 {
		logger.Warn("could not find the following required columns in the CSV",
			"fields", resolve.JoinFields(missing),
			"headers", headers,
		)
	}
	for _, f := range resolve.Fields {
		if col, ok := res.Column(f); ok {
			logger.Debug("resolved column", "field", f.String(), "column", col)
		}
	}

	all := rows.Normalize(ds, res)
	rows.Sort(all)

	return &Report{
		Headers:    headers,
		Resolution: res,
		Total:      len(all),
		Rows:       rows.Top(all, opts.Top),
	}
}

// LaTeX renders the report rows.
func (r *Report) LaTeX(opts latex.Options) string {
	return latex.Render(r.Rows, opts)
}

// Run loads path and builds the report.
func Run(ctx context.Context, path string, opts Options, logger *slog.Logger) (*Report, error) {
	ds, err := Load(ctx, path, logger)
	if err != nil {
		return nil, err
	}
	return Build(ds, opts, logger), nil
}

// Generate runs the pipeline for input and writes the table to output.
// Nothing is written when loading fails.
func Generate(ctx context.Context, input, output string, opts Options, logger *slog.Logger) (*Report, error) {
	rep, err := Run(ctx, input, opts, logger)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.WriteFile(output, []byte(rep.LaTeX(opts.Table)), 0o644); err != nil { //nolint:gosec // report is meant to be shared
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	return rep, nil
}
