package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
	"github.com/disrupted/dprint-plugin-markdown/pkg/reporter"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

type checkFlags struct {
	format         string
	jobs           int
	exclude        []string
	extensions     []string
	followSymlinks bool
	maxBytes       int64
	noContext      bool
	compact        bool
	verbose        bool
}

func newCheckCommand(global *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse Markdown files and verify their syntax trees",
		Long: `Parse Markdown files and verify the range invariants of every tree.

A tree is valid when every node's range is a slice of the source on
character boundaries, every child lies within its parent, and siblings
appear in source order without overlapping.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Exits with status 1 if any file fails to parse or
produces an invalid tree.`,
		Example: `  mdast check
  mdast check docs/ README.md
  mdast check --exclude 'vendor/**' --jobs 4
  mdast check --format json > report.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText), "output format: "+strings.Join(reporter.Formats(), ", "))
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "Markdown file extensions (default .md,.markdown)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse symlinked directories")
	cmd.Flags().Int64Var(&flags.maxBytes, "max-bytes", 0, "reject files larger than this (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list valid files too")

	return cmd
}

func runCheck(cmd *cobra.Command, global *globalFlags, flags *checkFlags, args []string) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return &UsageError{Err: err}
	}

	cli := &config.Config{Check: config.CheckConfig{
		Exclude:        flags.exclude,
		Extensions:     flags.extensions,
		FollowSymlinks: flags.followSymlinks,
		MaxBytes:       flags.maxBytes,
		Jobs:           flags.jobs,
	}}

	sess, err := loadSession(cmd, global, cli)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	opts := sess.runOptions(cmd, args)

	logger.Debug("starting check",
		logging.FieldPaths, opts.Paths,
		logging.FieldFlavor, sess.cfg.Flavor,
	)

	start := time.Now()
	result, err := runner.New(sess.parser()).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesChecked, result.Stats.FilesDiscovered,
		logging.FieldViolations, result.Stats.Violations,
		logging.FieldDuration, time.Since(start),
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       sess.cfg.Color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  sess.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return runFailure(result, "")
	}

	return nil
}
