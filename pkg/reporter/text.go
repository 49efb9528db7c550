package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// TextReporter lists failing files with their violations, grouped by file.
type TextReporter struct {
	terminal
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{terminal: newTerminal(opts)}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	return r.emit(result, func(w io.Writer) {
		if r.noFiles(w, result) {
			return
		}
		for _, outcome := range result.Files {
			r.writeOutcome(w, outcome)
		}
		if r.opts.ShowSummary {
			fmt.Fprint(w, "\n"+r.styles.FormatSummaryOneLine(result.Stats))
		}
	})
}

func (r *TextReporter) writeOutcome(w io.Writer, outcome runner.FileOutcome) {
	path := r.opts.DisplayPath(outcome.Path)

	if outcome.Error != nil {
		fmt.Fprintln(w, r.styles.FormatFileError(path, outcome.Error))
		return
	}
	if len(outcome.Violations) == 0 {
		if r.opts.Verbose {
			fmt.Fprintln(w, r.styles.FormatFileOK(path, outcome.Nodes))
		}
		return
	}

	fmt.Fprintln(w, r.styles.FormatFileHeader(path, len(outcome.Violations)))
	for _, v := range outcome.Violations {
		fmt.Fprint(w, r.styles.FormatViolation(path, outcome.File, v, r.opts.ShowContext))
	}
}
