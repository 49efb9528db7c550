package pretty

import (
	"fmt"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

const (
	symbolOK     = "✓"
	symbolFailed = "✗"
)

// Locate returns "line:col" for the start of r in file. Ranges that do not
// map onto the file fall back to the byte range.
func Locate(file *mdast.File, r mdast.Range) string {
	if file != nil {
		if line, col := file.LineAt(r.Start); line > 0 {
			return fmt.Sprintf("%d:%d", line, col)
		}
	}
	return r.String()
}

// FormatViolation formats a single broken invariant for terminal output.
func (s *Styles) FormatViolation(path string, file *mdast.File, v *mdast.InvariantError, showContext bool) string {
	var builder strings.Builder

	location := s.FilePath.Render(path) + s.Location.Render(":"+Locate(file, v.Range))

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Failure.Render("invalid"),
		s.Bold.Render(v.Kind.String()),
		s.Message.Render(v.Reason),
	))

	if showContext && file != nil {
		if line, col := file.LineAt(v.Range.Start); line > 0 {
			builder.WriteString(s.FormatSourceContext(file.LineContent(line), col))
		}
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.Dim.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Failure.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, violations int) string {
	header := s.FailureSymbol() + " " + s.FilePath.Render(path)
	if violations > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", violations, plural(violations, "violation", "violations")))
	}
	return header
}

// FormatFileOK formats the line for a file whose tree is valid.
func (s *Styles) FormatFileOK(path string, nodes int) string {
	return s.Success.Render(symbolOK) + " " + s.FilePath.Render(path) +
		s.Dim.Render(fmt.Sprintf(" (%d nodes)", nodes))
}

// FormatFileError formats the line for a file that could not be read or parsed.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FailureSymbol() + " " + s.FilePath.Render(path) + ": " +
		s.Failure.Render(fmt.Sprintf("error: %v", err))
}

// FailureSymbol returns the styled failure mark.
func (s *Styles) FailureSymbol() string {
	return s.Failure.Render(symbolFailed)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
