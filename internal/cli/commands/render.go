package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vertab/internal/cli/config"
	"github.com/leapstack-labs/vertab/internal/report"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <csv>",
		Short: "Render a LaTeX table from a version-upgrade CSV",
		Long: `Render a LaTeX table summarizing library version upgrades.

Columns are matched by name (case-insensitive, falling back to substring
matches). Rows are ranked by reachable callsites, then callsites, then
versions and client name, and only the top rows are kept.

Unmatched columns produce a warning and are left empty in the table.`,
		Example: `  # Write table.tex
  vertab render upgrades.csv

  # Narrow table, top 10 rows, custom output
  vertab render upgrades.csv --no-table-star --top 10 -o tables/upgrades.tex

  # Print to stdout
  vertab render upgrades.csv --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toStdout, _ := cmd.Flags().GetBool("stdout")
			return runRender(cmd, args[0], toStdout)
		},
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output .tex file path")
	cmd.Flags().String("caption", config.DefaultCaption, "Table caption (written verbatim)")
	cmd.Flags().String("label", config.DefaultLabel, "Table label (written verbatim)")
	cmd.Flags().Bool("no-table-star", false, `Use \begin{table} instead of \begin{table*}`)
	cmd.Flags().Bool("stdout", false, "Print the table instead of writing a file")
	addTopFlag(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, input string, toStdout bool) error {
	cc := NewCommandContext(cmd)
	opts := cc.Cfg.ReportOptions()

	if toStdout {
		rep, err := cc.Report(cmd, input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), rep.LaTeX(opts.Table))
		return err
	}

	rep, err := report.Generate(cmd.Context(), input, cc.Cfg.Output, opts, cc.Logger)
	if err != nil {
		return err
	}

	cc.Logger.Debug("table written", "rows", len(rep.Rows), "total", rep.Total, "path", cc.Cfg.Output)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote LaTeX table to %s\n", cc.Cfg.Output)
	return nil
}
