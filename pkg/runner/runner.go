package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// Parser turns Markdown content into a tree.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*mdast.File, error)
}

// Runner parses and validates files with a worker pool.
type Runner struct {
	Parser Parser
}

// New creates a Runner using parser.
func New(parser Parser) *Runner {
	return &Runner{Parser: parser}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// A cancelled context stops the run and returns the partial result with
// the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logging.FromContext(ctx).Debug("run started",
		logging.FieldPaths, len(files),
		logging.FieldJobs, jobs,
	)

	type indexed struct {
		index   int
		outcome FileOutcome
	}

	workCh := make(chan int)
	outCh := make(chan indexed)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				if ctx.Err() != nil {
					return
				}
				outcome := r.process(ctx, files[idx], opts)
				select {
				case <-ctx.Done():
					return
				case outCh <- indexed{idx, outcome}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]*FileOutcome, len(files))
	for item := range outCh {
		outcomes[item.index] = &item.outcome
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// process reads, parses and validates one file.
func (r *Runner) process(ctx context.Context, path string, opts Options) FileOutcome {
	logger := logging.FromContext(ctx).With(logging.FieldPath, path)
	outcome := FileOutcome{Path: path}

	var (
		content []byte
		info    *fsutil.FileInfo
		err     error
	)
	if path == fsutil.StdinPath {
		content, info, err = fsutil.ReadFrom(ctx, opts.stdin(), opts.MaxBytes)
	} else {
		content, info, err = fsutil.ReadFileLimit(ctx, path, opts.MaxBytes)
	}
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Info = info

	file, err := r.Parser.Parse(ctx, path, content)
	if err != nil {
		outcome.Error = fmt.Errorf("parse %s: %w", path, err)
		return outcome
	}

	outcome.Nodes = mdast.Count(file.Root)
	outcome.Violations = violations(mdast.Validate(file.Root, file.Context))
	if opts.KeepTrees || len(outcome.Violations) > 0 {
		outcome.File = file
	}

	changed, err := fsutil.CheckModifiedQuick(ctx, info)
	if err != nil {
		logger.Debug("modification check failed", logging.FieldError, err)
	} else if changed {
		outcome.Changed = true
		logger.Warn("file changed while it was processed")
	}

	if len(outcome.Violations) > 0 {
		logger.Debug("tree invariants broken", logging.FieldViolations, len(outcome.Violations))
	}

	return outcome
}
