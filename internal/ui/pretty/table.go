package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // FILE, NODES, BYTES, VIOLATIONS, STATUS
	minFileWidth     = 20
	minNumberWidth   = 5
	statusWidth      = 6
	heavySeparator   = "="
	lightSeparator   = "-"

	statusOK      = "ok"
	statusInvalid = "invalid"
	statusError   = "error"
)

// TableRow is one file in the statistics table.
type TableRow struct {
	File       string
	Nodes      string
	Bytes      string
	Violations string
	Status     string
}

// TableFormatter formats run results as a per-file table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatTable formats runner results as a styled table.
func (t *TableFormatter) FormatTable(result *runner.Result, displayPath func(string) string) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}
	if displayPath == nil {
		displayPath = func(p string) string { return p }
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		rows = append(rows, OutcomeRow(displayPath(file.Path), file))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths) + "\n")
	}
	builder.WriteString(t.formatSeparator(widths, lightSeparator) + "\n")
	builder.WriteString(t.formatRow(totalsRow(result.Stats), widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	return builder.String()
}

// OutcomeRow converts a file outcome to a table row.
func OutcomeRow(path string, outcome runner.FileOutcome) TableRow {
	row := TableRow{File: path, Nodes: "-", Bytes: "-", Violations: "-"}
	switch {
	case outcome.Error != nil:
		row.Status = statusError
		return row
	case len(outcome.Violations) > 0:
		row.Status = statusInvalid
	default:
		row.Status = statusOK
	}

	row.Nodes = strconv.Itoa(outcome.Nodes)
	row.Violations = strconv.Itoa(len(outcome.Violations))
	if outcome.Info != nil {
		row.Bytes = strconv.FormatInt(outcome.Info.Size, 10)
	}
	return row
}

func totalsRow(stats runner.Stats) TableRow {
	status := statusOK
	switch {
	case stats.FilesErrored > 0:
		status = statusError
	case stats.Violations > 0:
		status = statusInvalid
	}
	return TableRow{
		File:       fmt.Sprintf("%d files", stats.FilesDiscovered),
		Nodes:      strconv.Itoa(stats.Nodes),
		Bytes:      strconv.FormatInt(stats.Bytes, 10),
		Violations: strconv.Itoa(stats.Violations),
		Status:     status,
	}
}

type columnWidths struct {
	file       int
	nodes      int
	bytes      int
	violations int
}

// calculateColumnWidths determines column widths from content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		file:       minFileWidth,
		nodes:      minNumberWidth,
		bytes:      minNumberWidth,
		violations: len("VIOLATIONS"),
	}

	for _, row := range rows {
		widths.file = max(widths.file, len(row.File))
		widths.nodes = max(widths.nodes, len(row.Nodes))
		widths.bytes = max(widths.bytes, len(row.Bytes))
		widths.violations = max(widths.violations, len(row.Violations))
	}

	if total := t.calculateTotalWidth(widths); total > t.termWidth {
		widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.nodes + widths.bytes + widths.violations + statusWidth +
		tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		widths.nodes, "NODES",
		widths.bytes, "BYTES",
		widths.violations, "VIOLATIONS",
		statusWidth, "STATUS",
	)
	return t.styles.Bold.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.Dim.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %*s  %*s  %*s  ",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.nodes, row.Nodes,
		widths.bytes, row.Bytes,
		widths.violations, row.Violations,
	)
	return content + t.statusStyle(row.Status).Render(row.Status)
}

func (t *TableFormatter) statusStyle(status string) lipgloss.Style {
	switch status {
	case statusOK:
		return t.styles.Success
	case statusInvalid, statusError:
		return t.styles.Failure
	default:
		return lipgloss.NewStyle()
	}
}

// truncateFilePath truncates a file path, keeping the end.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
