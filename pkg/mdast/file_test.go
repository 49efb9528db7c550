package mdast_test

import (
	"slices"
	"testing"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

func TestIndexLines(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		source string
		want   []mdast.Line
	}{
		"empty":           {"", nil},
		"no terminator":   {"abc", []mdast.Line{{0, 3, 3}}},
		"lf":              {"abc\n", []mdast.Line{{0, 3, 4}, {4, 4, 4}}},
		"crlf":            {"abc\r\n", []mdast.Line{{0, 3, 5}, {5, 5, 5}}},
		"mixed":           {"a\r\nb\nc", []mdast.Line{{0, 1, 3}, {3, 4, 5}, {5, 6, 6}}},
		"blank lines":     {"\n\n", []mdast.Line{{0, 0, 1}, {1, 1, 2}, {2, 2, 2}}},
		"bare cr":         {"a\rb\n", []mdast.Line{{0, 3, 4}, {4, 4, 4}}},
		"crlf blank line": {"\r\n", []mdast.Line{{0, 0, 2}, {2, 2, 2}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := mdast.IndexLines(tt.source); !slices.Equal(got, tt.want) {
				t.Errorf("IndexLines(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestFile_LineAt(t *testing.T) {
	t.Parallel()

	file := mdast.NewFile("doc.md", "ab\r\ncd\n\nef")

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // \r
		{3, 1, 4}, // \n
		{4, 2, 1},
		{6, 2, 3},
		{7, 3, 1}, // blank line
		{8, 4, 1},
		{10, 4, 3}, // end of source
		{11, 0, 0},
		{-1, 0, 0},
	}

	for _, tt := range tests {
		line, col := file.LineAt(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestFile_LineAt_Empty(t *testing.T) {
	t.Parallel()

	file := mdast.NewFile("empty.md", "")
	if line, col := file.LineAt(0); line != 0 || col != 0 {
		t.Errorf("LineAt(0) on empty file = (%d, %d), want (0, 0)", line, col)
	}
	if file.LineCount() != 0 {
		t.Errorf("LineCount() = %d, want 0", file.LineCount())
	}
}

func TestFile_Offset(t *testing.T) {
	t.Parallel()

	file := mdast.NewFile("doc.md", "one\ntwo\n")

	tests := []struct {
		line, col int
		want      int
		ok        bool
	}{
		{1, 1, 0, true},
		{1, 4, 3, true},
		{1, 5, 4, true},
		{2, 2, 5, true},
		{3, 1, 8, true},
		{1, 6, 0, false},
		{0, 1, 0, false},
		{4, 1, 0, false},
		{2, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := file.Offset(tt.line, tt.col)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Offset(%d, %d) = (%d, %v), want (%d, %v)", tt.line, tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFile_OffsetRoundTrip(t *testing.T) {
	t.Parallel()

	source := "# Title\r\n\n- item\n  more\n"
	file := mdast.NewFile("doc.md", source)

	for offset := 0; offset <= len(source); offset++ {
		line, col := file.LineAt(offset)
		got, ok := file.Offset(line, col)
		if !ok || got != offset {
			t.Errorf("offset %d -> (%d, %d) -> (%d, %v)", offset, line, col, got, ok)
		}
	}
}

func TestFile_LineContent(t *testing.T) {
	t.Parallel()

	file := mdast.NewFile("doc.md", "first\r\nsecond\n\nlast")

	want := []string{"", "first", "second", "", "last", ""}
	for line, expected := range want {
		if got := file.LineContent(line); got != expected {
			t.Errorf("LineContent(%d) = %q, want %q", line, got, expected)
		}
	}
	if got := file.LineContent(-1); got != "" {
		t.Errorf("LineContent(-1) = %q", got)
	}
}

func TestFile_PositionOf(t *testing.T) {
	t.Parallel()

	file := mdast.NewFile("doc.md", "# Title\n\nsome *text*\n")
	emphasis := &mdast.TextDecoration{Range: mdast.Range{Start: 14, End: 20}}

	start, end := file.PositionOf(emphasis)
	if start != (mdast.Position{Line: 3, Column: 6}) {
		t.Errorf("start = %+v", start)
	}
	if end != (mdast.Position{Line: 3, Column: 12}) {
		t.Errorf("end = %+v", end)
	}

	whole, last := file.Span(mdast.Range{Start: 0, End: 21})
	if whole != (mdast.Position{Line: 1, Column: 1}) || last != (mdast.Position{Line: 4, Column: 1}) {
		t.Errorf("Span = %+v, %+v", whole, last)
	}

	if !start.IsValid() || (mdast.Position{}).IsValid() {
		t.Error("IsValid mismatch")
	}
	if file.Source() != "# Title\n\nsome *text*\n" {
		t.Error("Source mismatch")
	}
}
