package cli

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit, build date and Go runtime of mdast.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			}

			// Always printed, so it bypasses the leveled command logger.
			out := log.NewWithOptions(cmd.OutOrStdout(), log.Options{})
			out.Print(logging.Prefix,
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				"go", runtime.Version(),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")

	return cmd
}
