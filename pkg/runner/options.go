// Package runner parses and validates many Markdown files concurrently.
package runner

import (
	"io"
	"os"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process. "-" reads Stdin.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors Exclude patterns.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions (lowercase, with leading dot) select Markdown files during
	// directory walks. Defaults to DefaultExtensions(). Files named
	// explicitly in Paths are always processed.
	Extensions []string

	// Exclude are glob patterns, relative to WorkingDir, for files or
	// directories to skip. "**" matches any number of path segments.
	Exclude []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// MaxBytes rejects larger inputs when positive.
	MaxBytes int64

	// KeepTrees retains each parsed file in its FileOutcome. Without it only
	// counts and violations survive the run.
	KeepTrees bool

	// Stdin is read for the "-" path. Defaults to os.Stdin.
	Stdin io.Reader
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) stdin() io.Reader {
	if o.Stdin == nil {
		return os.Stdin
	}
	return o.Stdin
}
