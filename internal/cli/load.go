package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/configloader"
	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
	goldmarkparser "github.com/disrupted/dprint-plugin-markdown/pkg/parser/goldmark"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// session is the resolved state a subcommand runs with.
type session struct {
	cfg     *config.Config
	loaded  *configloader.LoadResult
	workDir string
}

// loadSession resolves the configuration for cmd. Values in cli were set
// from the subcommand's flags and take precedence over every other layer.
func loadSession(cmd *cobra.Command, flags *globalFlags, cli *config.Config) (*session, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if cli == nil {
		cli = &config.Config{}
	}
	if cmd.Flags().Changed("flavor") {
		cli.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("color") {
		cli.Color = config.ColorMode(flags.color)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loaded.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldFlavor, loaded.Config.Flavor,
		logging.FieldJobs, loaded.Config.Check.Jobs,
	)

	return &session{cfg: loaded.Config, loaded: loaded, workDir: workDir}, nil
}

// parser builds the producer for the resolved flavor and toggles.
func (s *session) parser() *goldmarkparser.Parser {
	return goldmarkparser.New(string(s.cfg.Flavor),
		goldmarkparser.WithFrontMatter(config.Enabled(s.cfg.Parser.FrontMatter)),
		goldmarkparser.WithFootnotes(config.Enabled(s.cfg.Parser.Footnotes)),
	)
}

// runOptions builds runner options for paths.
func (s *session) runOptions(cmd *cobra.Command, paths []string) runner.Options {
	return runner.Options{
		Paths:          paths,
		WorkingDir:     s.workDir,
		Extensions:     s.cfg.Check.Extensions,
		Exclude:        s.cfg.Check.Exclude,
		FollowSymlinks: s.cfg.Check.FollowSymlinks,
		Jobs:           s.cfg.Check.Jobs,
		MaxBytes:       s.cfg.Check.MaxBytes,
		Stdin:          cmd.InOrStdin(),
	}
}
