// Package pretty provides Lipgloss-based styled output for tree dumps and
// check results.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree dump
	Block      lipgloss.Style
	Inline     lipgloss.Style
	Missing    lipgloss.Style
	Range      lipgloss.Style
	Attr       lipgloss.Style
	Preview    lipgloss.Style
	Enumerator lipgloss.Style

	// Check output
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Warning  lipgloss.Style

	SummaryTitle lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Block:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Inline:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Missing:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Range:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Attr:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Preview:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true),
		Enumerator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Block:        plain,
		Inline:       plain,
		Missing:      plain,
		Range:        plain,
		Attr:         plain,
		Preview:      plain,
		Enumerator:   plain,
		FilePath:     plain,
		Location:     plain,
		Message:      plain,
		Success:      plain,
		Failure:      plain,
		Warning:      plain,
		SummaryTitle: plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled for writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR
// is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of writer's terminal, or
// DefaultWidth when it is not a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // file descriptors fit in int
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
