package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/disrupted/dprint-plugin-markdown/internal/configloader"
	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	goldmarkparser "github.com/disrupted/dprint-plugin-markdown/pkg/parser/goldmark"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// Exit codes for mdast.
const (
	// ExitSuccess indicates every tree was produced and is valid.
	ExitSuccess = 0

	// ExitCheckFailed indicates a file failed to parse or broke an invariant.
	ExitCheckFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates input data that cannot be used: a broken
	// configuration file or Markdown source that is not UTF-8.
	ExitDataError = 65

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = ExitDataError

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrCheckFailed is returned when a run found invalid or unparsable files.
	ErrCheckFailed = errors.New("check failed")

	// ErrConfig wraps configuration loading errors.
	ErrConfig = errors.New("configuration error")

	errNoFiles = &UsageError{Err: errors.New("no Markdown files found")}
)

// UsageError reports invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCodeFromResult determines the exit code for a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitCheckFailed
	}
	return ExitSuccess
}

// runFailure returns the error for a run with failed files. It wraps
// ErrCheckFailed and, when a source was not UTF-8, that parse error too.
func runFailure(result *runner.Result, detail string) error {
	err := ErrCheckFailed
	if detail != "" {
		err = fmt.Errorf("%w: %s", ErrCheckFailed, detail)
	}
	for _, outcome := range result.Files {
		if errors.Is(outcome.Error, goldmarkparser.ErrInvalidUTF8) {
			return fmt.Errorf("%w: %w", err, outcome.Error)
		}
	}
	return err
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	var usage *UsageError
	var invalid *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, goldmarkparser.ErrInvalidUTF8):
		return ExitDataError
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.As(err, &usage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &invalid), errors.Is(err, configloader.ErrConfigNotFound):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrTooLarge),
		errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
