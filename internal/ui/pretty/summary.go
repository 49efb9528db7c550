package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 violations in 2 files, 1 failed to parse (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
		stats.FilesDiscovered, plural(stats.FilesDiscovered, "file", "files")))

	if stats.Violations == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("All trees valid") + checked + "\n"
	}

	var parts []string
	if stats.Violations > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s", stats.Violations,
			plural(stats.Violations, "violation", "violations")))+
			fmt.Sprintf(" in %d %s", stats.FilesInvalid, plural(stats.FilesInvalid, "file", "files")))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed to parse", stats.FilesErrored)))
	}
	if stats.FilesChanged > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d changed during the run", stats.FilesChanged)))
	}

	return strings.Join(parts, ", ") + checked + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " + s.Bold.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files parsed:      " + s.Bold.Render(strconv.Itoa(stats.FilesParsed)) + "\n")
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	if stats.FilesInvalid > 0 {
		builder.WriteString("  Files invalid:     " + s.Failure.Render(strconv.Itoa(stats.FilesInvalid)) + "\n")
	}
	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:     " + s.Warning.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Nodes:             " + s.Bold.Render(strconv.Itoa(stats.Nodes)) + "\n")
	builder.WriteString("  Bytes:             " + s.Bold.Render(strconv.FormatInt(stats.Bytes, 10)) + "\n")
	builder.WriteString("  Violations:        ")
	if stats.Violations > 0 {
		builder.WriteString(s.Failure.Render(strconv.Itoa(stats.Violations)))
	} else {
		builder.WriteString(s.Bold.Render("0"))
	}
	builder.WriteString("\n\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed: some files could not be parsed"))
	case stats.Violations > 0:
		builder.WriteString(s.Failure.Render("Check failed: invalid trees"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
