package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// TableReporter prints one row of statistics per file.
type TableReporter struct {
	terminal
	table *pretty.TableFormatter
}

// NewTableReporter creates a TableReporter sized to the output terminal.
func NewTableReporter(opts Options) *TableReporter {
	t := newTerminal(opts)
	return &TableReporter{
		terminal: t,
		table:    pretty.NewTableFormatter(t.styles, pretty.TerminalWidth(opts.Writer)),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	return r.emit(result, func(w io.Writer) {
		if r.noFiles(w, result) {
			return
		}
		fmt.Fprint(w, r.table.FormatTable(result, r.opts.DisplayPath))
		if r.opts.ShowSummary {
			fmt.Fprint(w, r.styles.FormatSummaryOneLine(result.Stats))
		}
	})
}
