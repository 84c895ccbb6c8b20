package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vertab/internal/cli/output"
	"github.com/leapstack-labs/vertab/internal/report"
	"github.com/leapstack-labs/vertab/pkg/latex"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <csv>",
		Short: "Show the ranked rows in the terminal",
		Long: `Show the rows that render would put in the table, in the same order,
without writing any LaTeX.`,
		Example: `  # Box-drawn table
  vertab preview upgrades.csv

  # Markdown for a pull request description
  vertab preview upgrades.csv --format markdown --top 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return runPreview(cmd, args[0], format)
		},
	}

	cmd.Flags().String("format", string(output.FormatText), "Output format (text|markdown|csv)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
	addTopFlag(cmd)

	return cmd
}

func runPreview(cmd *cobra.Command, input, format string) error {
	f, err := output.ParseFormat(format, output.FormatText, output.FormatMarkdown, output.FormatCSV)
	if err != nil {
		return err
	}

	cc := NewCommandContext(cmd)
	rep, err := cc.Report(cmd, input)
	if err != nil {
		return err
	}
	return renderPreview(cmd.OutOrStdout(), rep, f)
}

func renderPreview(w io.Writer, rep *report.Report, f output.Format) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	header := make(table.Row, len(latex.Headers))
	for i, h := range latex.Headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, r := range rep.Rows {
		t.AppendRow(table.Row{
			r.ClientName,
			r.LibraryOld,
			r.LibraryNew,
			latex.FormatCount(r.NumCallsites),
			latex.FormatCount(r.Reachable),
		})
	}

	switch f {
	case output.FormatMarkdown:
		t.RenderMarkdown()
	case output.FormatCSV:
		t.RenderCSV()
		return nil
	default:
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", len(rep.Rows), rep.Total)
	return nil
}
