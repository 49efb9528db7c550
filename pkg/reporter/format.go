package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format names an output format.
type Format string

// Output formats.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

var formats = []Format{FormatText, FormatTable, FormatJSON, FormatSummary}

// Formats lists the accepted format names.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat resolves a format name, case-insensitively. The empty name
// selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(strings.ToLower(name)); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Formats(), ", "))
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool { return slices.Contains(formats, f) }
