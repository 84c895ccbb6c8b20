package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/vertab/internal/testutil"
	"github.com/leapstack-labs/vertab/pkg/dataset"
	"github.com/leapstack-labs/vertab/pkg/latex"
	"github.com/leapstack-labs/vertab/pkg/resolve"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// twentyRows builds a CSV whose Reachable column is 0..19 in shuffled order.
func twentyRows() string {
	var b strings.Builder
	b.WriteString("Client,Current Version,Latest Version,Number of Callsites,Reachable\n")
	for i := 0; i < 20; i++ {
		reach := (i * 7) % 20
		fmt.Fprintf(&b, "client-%02d,1.%d,2.%d,%d,%d\n", i, i%3, i%3, 100+i, reach)
	}
	return b.String()
}

func TestGenerate_EndToEnd(t *testing.T) {
	in := writeCSV(t, twentyRows())
	out := filepath.Join(t.TempDir(), "table.tex")

	rep, err := Generate(context.Background(), in, out, Options{
		Top:   15,
		Table: latex.Options{Caption: latex.DefaultCaption, Label: latex.DefaultLabel, Wide: true},
	}, testutil.NewTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 20, rep.Total)
	require.Len(t, rep.Rows, 15)
	for i := 1; i < len(rep.Rows); i++ {
		assert.GreaterOrEqual(t, rep.Rows[i-1].Reachable, rep.Rows[i].Reachable)
	}
	assert.InDelta(t, 19.0, rep.Rows[0].Reachable, 1e-9)
	assert.InDelta(t, 5.0, rep.Rows[14].Reachable, 1e-9)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)

	assert.True(t, strings.HasPrefix(doc, `\begin{table*}[hbt!]`))
	assert.Contains(t, doc, `\end{table*}`)
	assert.Equal(t, 15, strings.Count(doc, "client-"))
	assert.Equal(t, 16, strings.Count(doc, ` \\`), "header plus 15 data rows")
}

func TestGenerate_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "table.tex")

	_, err := Generate(context.Background(), filepath.Join(dir, "missing.csv"), out, Options{}, nil)
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "CSV not found at ")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output may be written")
}

func TestGenerate_CancelledContext(t *testing.T) {
	in := writeCSV(t, twentyRows())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, in, filepath.Join(t.TempDir(), "t.tex"), Options{}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuild_WarnsOnceForUnresolvedColumns(t *testing.T) {
	ds := dataset.New([]string{"Client", "Reachable"}, [][]string{
		{"acme", "2"},
		{"globex", "5"},
	})
	logger, logs := testutil.NewCaptureLogger()

	rep := Build(ds, Options{}, logger)

	warnings := logs.Lines(slog.LevelWarn)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "LibraryOld, LibraryNew, NumCallsites")

	assert.Equal(t, []resolve.Field{resolve.LibraryOld, resolve.LibraryNew, resolve.NumCallsites}, rep.Resolution.Missing())
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "globex", rep.Rows[0].ClientName)
	assert.Empty(t, rep.Rows[0].LibraryOld)
	assert.Zero(t, rep.Rows[0].NumCallsites)

	doc := rep.LaTeX(latex.Options{})
	assert.Contains(t, doc, `globex &  &  & 0 & 5 \\`)
}

func TestBuild_NoWarningWhenResolved(t *testing.T) {
	ds := dataset.New([]string{"ClientName", "LibraryOld", "LibraryNew", "NumCallsites", "Reachable"}, nil)
	logger, logs := testutil.NewCaptureLogger()

	rep := Build(ds, Options{}, logger)

	assert.Empty(t, logs.Lines(slog.LevelWarn))
	assert.Empty(t, rep.Rows)
	assert.Zero(t, rep.Total)
}

func TestBuild_CustomCandidates(t *testing.T) {
	ds := dataset.New([]string{"Customer", "Reachable"}, [][]string{{"acme", "1"}})

	cands := resolve.DefaultCandidates().Prepend(resolve.Candidates{resolve.ClientName: {"customer"}})
	rep := Build(ds, Options{Candidates: cands}, nil)

	col, ok := rep.Resolution.Column(resolve.ClientName)
	require.True(t, ok)
	assert.Equal(t, "Customer", col)
	assert.Equal(t, "acme", rep.Rows[0].ClientName)
}

func TestBuild_FloatCountsRenderAsIntegers(t *testing.T) {
	in := writeCSV(t, "Client,Number of Callsites,Reachable\nacme,12.0,n/a\n")

	rep, err := Run(context.Background(), in, Options{}, nil)
	require.NoError(t, err)

	doc := rep.LaTeX(latex.Options{})
	assert.Contains(t, doc, `acme &  &  & 12 & 0 \\`)
}
