package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/vertab/internal/cli/output"
	"github.com/leapstack-labs/vertab/internal/report"
	"github.com/leapstack-labs/vertab/pkg/resolve"
)

// ColumnMatch is one line of the columns report.
type ColumnMatch struct {
	Field      string   `json:"field" yaml:"field"`
	Column     string   `json:"column,omitempty" yaml:"column,omitempty"`
	Found      bool     `json:"found" yaml:"found"`
	Candidates []string `json:"candidates" yaml:"candidates"`
}

// ColumnsOutput is the structured form of the columns report.
type ColumnsOutput struct {
	Input   string        `json:"input" yaml:"input"`
	Headers []string      `json:"headers" yaml:"headers"`
	Fields  []ColumnMatch `json:"fields" yaml:"fields"`
}

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <csv>",
		Short: "Show which input column feeds each table field",
		Long: `Show how the five table fields (ClientName, LibraryOld, LibraryNew,
NumCallsites, Reachable) were matched against the input headers.

Extra header names can be configured per field in vertab.yaml:

  columns:
    client_name: [Customer]
    reachable: [Hits]`,
		Example: `  vertab columns upgrades.csv
  vertab columns upgrades.csv --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return runColumns(cmd, args[0], format)
		},
	}

	cmd.Flags().String("format", string(output.FormatText), "Output format (text|yaml|json)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runColumns(cmd *cobra.Command, input, format string) error {
	f, err := output.ParseFormat(format, output.FormatText, output.FormatYAML, output.FormatJSON)
	if err != nil {
		return err
	}

	cc := NewCommandContext(cmd)
	ds, err := report.Load(cmd.Context(), input, cc.Logger)
	if err != nil {
		return err
	}

	cands := cc.Cfg.Candidates()
	res := resolve.Resolve(ds.Headers(), cands)

	out := ColumnsOutput{Input: input, Headers: ds.Headers()}
	for _, field := range resolve.Fields {
		col, ok := res.Column(field)
		out.Fields = append(out.Fields, ColumnMatch{
			Field:      field.String(),
			Column:     col,
			Found:      ok,
			Candidates: cands[field],
		})
	}

	w := cmd.OutOrStdout()
	switch f {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		printColumns(w, output.NewStyles(w), out)
		return nil
	}
}

func printColumns(w io.Writer, s *output.Styles, out ColumnsOutput) {
	_, _ = fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("Columns in %s", out.Input)))
	_, _ = fmt.Fprintln(w)
	for _, m := range out.Fields {
		if m.Found {
			_, _ = fmt.Fprintf(w, "  %s %s\n", s.Field.Render(m.Field), s.Found.Render(m.Column))
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", s.Field.Render(m.Field), s.Missing.Render("not found"))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d headers: %v", len(out.Headers), out.Headers)))
}
