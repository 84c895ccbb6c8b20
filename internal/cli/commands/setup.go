package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vertab/internal/cli/config"
	"github.com/leapstack-labs/vertab/internal/report"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext collects the config and logger that the root command
// stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:    config.FromContext(ctx),
		Logger: config.GetLogger(ctx),
	}
}

// Report runs the pipeline for input with the configured options.
func (c *CommandContext) Report(cmd *cobra.Command, input string) (*report.Report, error) {
	return report.Run(cmd.Context(), input, c.Cfg.ReportOptions(), c.Logger)
}

// addTopFlag registers the row limit shared by render and preview.
// Defaults live in the config layer; flags only override when set.
func addTopFlag(cmd *cobra.Command) {
	cmd.Flags().Int("top", config.DefaultTop, "Keep only the top N rows by reachable callsites (0 keeps all)")
}
