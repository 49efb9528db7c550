// Package cli provides the Cobra command structure for mdast.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	flavor     string
}

// NewRootCommand creates the root mdast command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdast",
		Short: "Inspect the Markdown syntax tree used by the formatter",
		Long: `mdast parses Markdown into the syntax tree the formatter works on.

Every node carries the byte range of the source it was built from. Use
"dump" to look at the tree of a document and "check" to verify that the
ranges of every node nest and order correctly across many files.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if flags.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.flavor, "flavor", string(config.FlavorGFM),
		"Markdown flavor: commonmark, gfm")

	// Add subcommands.
	rootCmd.AddCommand(newDumpCommand(flags))
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(config.ColorMode(colorFromArgs(os.Args[1:])), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// colorFromArgs finds --color before flags are parsed, so help output can
// honor it.
func colorFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--color" && i+1 < len(args) {
			return args[i+1]
		}
		if value, ok := strings.CutPrefix(arg, "--color="); ok {
			return value
		}
	}
	return string(config.ColorAuto)
}
