package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
	"github.com/disrupted/dprint-plugin-markdown/pkg/reporter"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

type dumpFlags struct {
	raw      bool
	noText   bool
	noDetect bool
	width    int
}

func newDumpCommand(global *globalFlags) *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print the syntax tree of Markdown files",
		Long: `Parse Markdown files and print their syntax trees.

Each node is shown with its kind, its line:column range and the fields
that matter for its kind. Text-bearing nodes get a quoted preview of
their content. Use "-" to read from standard input.`,
		Example: `  mdast dump README.md
  mdast dump --no-text docs/
  cat notes.md | mdast dump -
  mdast dump --raw README.md`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{kindsAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, global, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.raw, "raw", false, "print the tree as Go syntax")
	cmd.Flags().BoolVar(&flags.noText, "no-text", false, "hide text previews")
	cmd.Flags().BoolVar(&flags.noDetect, "no-detect", false, "do not guess languages of untagged code blocks")
	cmd.Flags().IntVar(&flags.width, "width", 0, "preview width (0 = terminal width)")

	return cmd
}

func runDump(cmd *cobra.Command, global *globalFlags, flags *dumpFlags, args []string) (err error) {
	cli := &config.Config{Dump: config.DumpConfig{Width: flags.width, Raw: flags.raw}}
	if flags.noText {
		cli.Dump.Text = config.Bool(false)
	}
	if flags.noDetect {
		cli.Dump.DetectLanguage = config.Bool(false)
	}

	sess, err := loadSession(cmd, global, cli)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	opts := sess.runOptions(cmd, args)
	opts.KeepTrees = true

	result, err := runner.New(sess.parser()).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if len(result.Files) == 0 {
		return errNoFiles
	}

	out := cmd.OutOrStdout()
	bw := bufio.NewWriter(out)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("write output: %w", flushErr)
		}
	}()

	dumpCfg := sess.cfg.Dump
	width := dumpCfg.Width
	if width <= 0 {
		width = pretty.TerminalWidth(out)
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(sess.cfg.Color, out))
	printer := pretty.NewTreePrinter(styles, pretty.TreeOptions{
		ShowText:       config.Enabled(dumpCfg.Text),
		DetectLanguage: config.Enabled(dumpCfg.DetectLanguage),
		Width:          width,
	})
	display := reporter.Options{WorkingDir: sess.workDir}

	var failed int
	for i, outcome := range result.Files {
		path := display.DisplayPath(outcome.Path)

		if outcome.Error != nil {
			failed++
			logger.Error("cannot dump file", logging.FieldPath, path, logging.FieldError, outcome.Error)
			continue
		}
		if n := len(outcome.Violations); n > 0 {
			logger.Warn("tree breaks range invariants", logging.FieldPath, path, logging.FieldViolations, n)
		}

		if len(result.Files) > 1 {
			if i > 0 {
				fmt.Fprintln(bw)
			}
			fmt.Fprintln(bw, styles.Bold.Render("==> "+path+" <=="))
		}

		if dumpCfg.Raw {
			err = pretty.WriteRaw(bw, outcome.File)
		} else {
			err = printer.Write(bw, outcome.File)
		}
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return runFailure(result, fmt.Sprintf("%d of %d files could not be parsed", failed, len(result.Files)))
	}

	return nil
}
