// Package reporter writes the results of a check run in several formats.
package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// Reporter writes a finished run.
type Reporter interface {
	// Report writes result and returns the number of problems in it:
	// broken invariants plus files that could not be read or parsed.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates the Reporter for opts.Format. A nil Writer means stdout and
// an empty Format means text.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// terminal is the state shared by the styled reporters.
type terminal struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

func newTerminal(opts Options) terminal {
	return terminal{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// emit buffers the output of write and flushes it once.
func (t *terminal) emit(result *runner.Result, write func(w io.Writer)) (int, error) {
	write(t.bw)
	if err := t.bw.Flush(); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return problems(result), nil
}

// noFiles reports whether result is empty, noting it on w when summaries
// are on.
func (t *terminal) noFiles(w io.Writer, result *runner.Result) bool {
	if result != nil && len(result.Files) > 0 {
		return false
	}
	if t.opts.ShowSummary {
		fmt.Fprintln(w, t.styles.Success.Render("No files to check."))
	}
	return true
}

func problems(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.Violations + result.Stats.FilesErrored
}
