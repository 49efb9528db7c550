package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
	"github.com/disrupted/dprint-plugin-markdown/pkg/reporter"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

// createTestResult returns a run over three files: one valid, one with a
// violation on line 2, and one that failed to read.
func createTestResult() *runner.Result {
	invalid := mdast.NewFile("/work/docs/b.md", "# B\nbody\n")

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:  "/work/a.md",
				Info:  &fsutil.FileInfo{Path: "/work/a.md", Size: 10},
				Nodes: 4,
			},
			{
				Path:  "/work/docs/b.md",
				Info:  &fsutil.FileInfo{Path: "/work/docs/b.md", Size: 9},
				File:  invalid,
				Nodes: 3,
				Violations: []*mdast.InvariantError{
					{Kind: mdast.KindText, Range: mdast.Range{Start: 4, End: 20}, Reason: "outside parent"},
				},
			},
			{
				Path:  "/work/c.md",
				Error: errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesParsed:     2,
			FilesErrored:    1,
			FilesInvalid:    1,
			Violations:      1,
			Nodes:           7,
			Bytes:           19,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "table", input: "table", want: reporter.FormatTable},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "case-insensitive", input: "JSON", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"text", "table", "json", "summary"}, reporter.Formats())

	_, err := reporter.ParseFormat("sarif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, table, json, summary")
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatTable, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("sarif"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  config.ColorNever,
			})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       config.ColorNever,
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check")
}

func TestTextReporter_WithViolations(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       config.ColorNever,
		ShowSummary: true,
		ShowContext: true,
		WorkingDir:  "/work",
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.NotContains(t, output, "a.md", "valid files are quiet by default")
	assert.Contains(t, output, "✗ docs/b.md (1 violation)")
	assert.Contains(t, output, "docs/b.md:2:1  invalid  Text  outside parent")
	assert.Contains(t, output, "        body\n        ^\n")
	assert.Contains(t, output, "✗ c.md: error: permission denied")
	assert.Contains(t, output, "1 violation in 1 file, 1 failed to parse (3 files checked)")
}

func TestTextReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:     &buf,
		Color:      config.ColorNever,
		Verbose:    true,
		WorkingDir: "/work",
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ a.md (4 nodes)")
	assert.NotContains(t, output, "files checked", "summary is off")
}

func TestTextReporter_PathsOutsideWorkingDir(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:     &buf,
		Color:      config.ColorNever,
		Verbose:    true,
		WorkingDir: "/elsewhere",
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "/work/a.md")
}

func TestTableReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       config.ColorNever,
		ShowSummary: true,
		WorkingDir:  "/work",
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, "docs/b.md")
	assert.Contains(t, output, "invalid")
	assert.Contains(t, output, "3 files")
	assert.Contains(t, output, "failed to parse")
}

func TestSummaryReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatSummary,
		Color:  config.ColorNever,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, buf.String(), "Check failed")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Should still produce valid JSON
	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithViolations(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: "/work"})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 3)
	assert.Equal(t, "a.md", output.Files[0].Path)
	assert.Empty(t, output.Files[0].Violations)
	assert.Len(t, output.Files[0].Digest, 12)

	violations := output.Files[1].Violations
	require.Len(t, violations, 1)
	assert.Equal(t, reporter.JSONViolation{
		Kind:        "Text",
		Reason:      "outside parent",
		StartOffset: 4,
		EndOffset:   20,
		StartLine:   2,
		StartColumn: 1,
	}, violations[0])

	assert.Equal(t, "permission denied", output.Files[2].Error)
	assert.Equal(t, 3, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.Violations)
	assert.Equal(t, int64(19), output.Summary.Bytes)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "compact output is a single line")
}
