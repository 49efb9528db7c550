package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

func TestOutcomeRow(t *testing.T) {
	tests := []struct {
		name    string
		outcome runner.FileOutcome
		want    pretty.TableRow
	}{
		{
			name:    "ok",
			outcome: runner.FileOutcome{Nodes: 7, Info: &fsutil.FileInfo{Size: 42}},
			want:    pretty.TableRow{File: "a.md", Nodes: "7", Bytes: "42", Violations: "0", Status: "ok"},
		},
		{
			name: "invalid",
			outcome: runner.FileOutcome{
				Nodes:      3,
				Violations: []*mdast.InvariantError{{Kind: mdast.KindText}},
			},
			want: pretty.TableRow{File: "a.md", Nodes: "3", Bytes: "-", Violations: "1", Status: "invalid"},
		},
		{
			name:    "error",
			outcome: runner.FileOutcome{Error: errors.New("boom")},
			want:    pretty.TableRow{File: "a.md", Nodes: "-", Bytes: "-", Violations: "-", Status: "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pretty.OutcomeRow("a.md", tt.outcome))
		})
	}
}

func TestFormatTable(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/docs/a.md", Nodes: 10, Info: &fsutil.FileInfo{Size: 100}},
			{Path: "/docs/b.md", Error: errors.New("boom")},
		},
		Stats: runner.Stats{FilesDiscovered: 2, FilesParsed: 1, FilesErrored: 1, Nodes: 10, Bytes: 100},
	}

	out := formatter.FormatTable(result, func(p string) string { return strings.TrimPrefix(p, "/docs/") })
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "VIOLATIONS")
	assert.True(t, strings.HasPrefix(lines[1], "====="))
	assert.Contains(t, lines[2], "a.md")
	assert.True(t, strings.HasSuffix(lines[2], "ok"))
	assert.True(t, strings.HasSuffix(lines[3], "error"))
	assert.True(t, strings.HasPrefix(lines[4], "-----"))
	assert.Contains(t, lines[5], "2 files")
	assert.True(t, strings.HasSuffix(lines[5], "error"))
}

func TestFormatTable_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)

	assert.Empty(t, formatter.FormatTable(nil, nil))
	assert.Empty(t, formatter.FormatTable(&runner.Result{}, nil))
}

func TestFormatTable_LongPath(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 50)
	long := strings.Repeat("d/", 40) + "file.md"

	out := formatter.FormatTable(&runner.Result{
		Files: []runner.FileOutcome{{Path: long, Nodes: 1}},
		Stats: runner.Stats{FilesDiscovered: 1},
	}, nil)

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "file.md")
	assert.NotContains(t, out, long)
}
