package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls styled output.
	Color config.ColorMode

	// ShowContext prints the source line under each violation.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Verbose lists valid files too, not only failures.
	Verbose bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowContext: true,
		ShowSummary: true,
	}
}

// DisplayPath returns path relative to the working directory when it lies
// beneath it.
func (o Options) DisplayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
