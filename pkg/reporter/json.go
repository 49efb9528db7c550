package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// jsonSchemaVersion is bumped when the output shape changes.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Digest     string          `json:"digest,omitempty"`
	Bytes      int64           `json:"bytes"`
	Nodes      int             `json:"nodes"`
	Violations []JSONViolation `json:"violations"`
	Changed    bool            `json:"changed,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single broken invariant.
type JSONViolation struct {
	Kind        string `json:"kind"`
	Reason      string `json:"reason"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	StartLine   int    `json:"startLine,omitempty"`
	StartColumn int    `json:"startColumn,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int   `json:"filesChecked"`
	FilesParsed  int   `json:"filesParsed"`
	FilesErrored int   `json:"filesErrored"`
	FilesInvalid int   `json:"filesInvalid"`
	FilesChanged int   `json:"filesChanged"`
	Violations   int   `json:"violations"`
	Nodes        int   `json:"nodes"`
	Bytes        int64 `json:"bytes"`
}

// JSONReporter writes results as one JSON document.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSONReporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	var data []byte
	var err error
	if r.opts.Compact {
		data, err = json.Marshal(output)
	} else {
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	if _, err := r.opts.Writer.Write(append(data, '\n')); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return problems(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       r.opts.DisplayPath(file.Path),
			Nodes:      file.Nodes,
			Violations: make([]JSONViolation, 0, len(file.Violations)),
			Changed:    file.Changed,
		}
		if file.Info != nil {
			fileResult.Digest = file.Info.Digest()
			fileResult.Bytes = file.Info.Size
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		for _, v := range file.Violations {
			jv := JSONViolation{
				Kind:        v.Kind.String(),
				Reason:      v.Reason,
				StartOffset: v.Range.Start,
				EndOffset:   v.Range.End,
			}
			if file.File != nil {
				jv.StartLine, jv.StartColumn = file.File.LineAt(v.Range.Start)
			}
			fileResult.Violations = append(fileResult.Violations, jv)
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked: stats.FilesDiscovered,
		FilesParsed:  stats.FilesParsed,
		FilesErrored: stats.FilesErrored,
		FilesInvalid: stats.FilesInvalid,
		FilesChanged: stats.FilesChanged,
		Violations:   stats.Violations,
		Nodes:        stats.Nodes,
		Bytes:        stats.Bytes,
	}

	return output
}
