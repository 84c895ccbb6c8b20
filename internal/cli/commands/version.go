package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vertab/internal/cli/config"
	"github.com/leapstack-labs/vertab/pkg/dataset"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the vertab version, the input formats it reads and where it
looks for configuration. With --short only the version number is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			short, _ := cmd.Flags().GetBool("short")
			w := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(w, version)
				return err
			}
			_, _ = fmt.Fprintf(w, "vertab v%s\n", version)
			_, _ = fmt.Fprintf(w, "inputs: %s\n", strings.Join(dataset.Extensions, ", "))
			_, err := fmt.Fprintf(w, "config: %s or %s, %s* environment variables\n",
				config.ConfigFileName, config.ConfigFileNameAlt, config.EnvPrefix)
			return err
		},
	}

	cmd.Flags().Bool("short", false, "Print only the version number")
	return cmd
}
