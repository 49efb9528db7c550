package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/configloader"
	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

func newConfigCommand(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create configuration",
		Long: `Inspect the resolved configuration or create a starter file.

Configuration is merged from, lowest precedence first: defaults, the user
config in $XDG_CONFIG_HOME/mdast, the nearest .mdast.yml above the working
directory, the file named with --config, MDAST_* environment variables
and command-line flags.`,
	}

	cmd.AddCommand(newConfigShowCommand(global))
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigEnvCommand())

	return cmd
}

func newConfigShowCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, global, nil)
			if err != nil {
				return err
			}

			var header strings.Builder
			header.WriteString("# Resolved mdast configuration\n")
			if len(sess.loaded.LoadedFrom) == 0 {
				header.WriteString("# Sources: defaults only\n")
			}
			for _, path := range sess.loaded.LoadedFrom {
				header.WriteString("# Source: " + path + "\n")
			}

			out, err := sess.cfg.ToYAMLWithHeader(header.String())
			if err != nil {
				return fmt.Errorf("serialize config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented .mdast.yml in the current directory",
		Example: `  mdast config init
  mdast config init --output docs/.mdast.yml
  mdast config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			if output == "" {
				output = configloader.ProjectConfigFiles[0]
			}
			absPath, err := filepath.Abs(output)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			if _, err := os.Stat(absPath); err == nil {
				if !force {
					return &UsageError{Err: fmt.Errorf("file %q already exists; use --force to overwrite", output)}
				}
				logger.Warn("overwriting existing file", logging.FieldPath, output)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", output, err)
			}

			if err := os.WriteFile(absPath, config.Template(), configFilePermissions); err != nil {
				return fmt.Errorf("write file: %w", err)
			}

			logger.Info("created configuration file", logging.FieldPath, output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default .mdast.yml)")

	return cmd
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables that override configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := configloader.ListEnvVars()
			width := 0
			for _, v := range vars {
				width = max(width, len(v[0]))
			}
			for _, v := range vars {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, v[0], v[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
