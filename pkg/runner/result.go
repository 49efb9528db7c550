package runner

import (
	"errors"

	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// FileOutcome is what a run learned about one file.
type FileOutcome struct {
	Path string

	// Info describes the source as read. Nil when reading failed.
	Info *fsutil.FileInfo

	// File is the parsed tree, retained with Options.KeepTrees or when
	// the tree has violations.
	File *mdast.File

	// Nodes is the number of nodes in the tree, root included.
	Nodes int

	// Violations lists broken tree invariants.
	Violations []*mdast.InvariantError

	// Changed is set when the file was modified on disk during the run.
	Changed bool

	// Error is set if the file could not be read or parsed.
	Error error
}

// OK reports whether the file parsed into a valid tree.
func (o FileOutcome) OK() bool {
	return o.Error == nil && len(o.Violations) == 0
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesParsed     int
	FilesErrored    int

	// FilesInvalid is the number of files with at least one violation.
	FilesInvalid int

	// FilesChanged is the number of files modified while they were processed.
	FilesChanged int

	Violations int
	Nodes      int
	Bytes      int64
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, in discovery order.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed to parse or validate.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.Violations > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	r.Stats.Nodes += outcome.Nodes
	if outcome.Info != nil {
		r.Stats.Bytes += outcome.Info.Size
	}
	if n := len(outcome.Violations); n > 0 {
		r.Stats.FilesInvalid++
		r.Stats.Violations += n
	}
}

// violations unpacks the joined error returned by mdast.Validate.
func violations(err error) []*mdast.InvariantError {
	if err == nil {
		return nil
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // unpacking errors.Join
		errs = joined.Unwrap()
	}

	out := make([]*mdast.InvariantError, 0, len(errs))
	for _, e := range errs {
		var inv *mdast.InvariantError
		if errors.As(e, &inv) {
			out = append(out, inv)
		}
	}
	return out
}
