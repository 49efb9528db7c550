package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// SummaryReporter prints only the aggregate statistics block.
type SummaryReporter struct {
	terminal
}

// NewSummaryReporter creates a SummaryReporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{terminal: newTerminal(opts)}
}

// Report implements Reporter. A nil result prints zeroed statistics.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	return r.emit(result, func(w io.Writer) {
		var stats runner.Stats
		if result != nil {
			stats = result.Stats
		}
		fmt.Fprint(w, r.styles.FormatSummary(stats))
	})
}
