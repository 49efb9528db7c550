package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "all valid",
			stats: runner.Stats{FilesDiscovered: 3, FilesParsed: 3},
			want:  "All trees valid (3 files checked)\n",
		},
		{
			name:  "single file",
			stats: runner.Stats{FilesDiscovered: 1, FilesParsed: 1},
			want:  "All trees valid (1 file checked)\n",
		},
		{
			name:  "violations",
			stats: runner.Stats{FilesDiscovered: 4, FilesParsed: 4, FilesInvalid: 1, Violations: 2},
			want:  "2 violations in 1 file (4 files checked)\n",
		},
		{
			name: "errors and changes",
			stats: runner.Stats{
				FilesDiscovered: 5, FilesParsed: 3, FilesErrored: 2,
				FilesInvalid: 2, Violations: 1, FilesChanged: 1,
			},
			want: "1 violation in 2 files, 2 failed to parse, 1 changed during the run (5 files checked)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary_Passed(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesDiscovered: 5, FilesParsed: 5, Nodes: 120, Bytes: 2048})

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:     5")
	assert.Contains(t, result, "Nodes:             120")
	assert.Contains(t, result, "Bytes:             2048")
	assert.Contains(t, result, "Check passed")
	assert.NotContains(t, result, "Files failed:")
	assert.NotContains(t, result, "Files invalid:")
}

func TestFormatSummary_Failed(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{
		FilesDiscovered: 4, FilesParsed: 3, FilesErrored: 1,
		FilesInvalid: 1, Violations: 3, FilesChanged: 1,
	})

	assert.Contains(t, result, "Files failed:      1")
	assert.Contains(t, result, "Files invalid:     1")
	assert.Contains(t, result, "Files changed:     1")
	assert.Contains(t, result, "Violations:        3")
	assert.Contains(t, result, "Check failed: some files could not be parsed")
}

func TestFormatSummary_Invalid(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesDiscovered: 1, FilesParsed: 1, FilesInvalid: 1, Violations: 1})

	assert.Contains(t, result, "Check failed: invalid trees")
}
