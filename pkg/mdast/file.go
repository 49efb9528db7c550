// Package mdast provides the markdown abstract syntax tree consumed by
// the formatter. It defines:
//   - Range and Context: byte spans and the source text they index
//   - one struct per syntactic construct, joined by the Node interface
//   - File: a parsed document together with its source and line index
//   - the text predicates the printer uses for spacing and escaping
//
// Trees are built once by a producer and are read-only afterwards.
package mdast

import (
	"slices"
	"strings"
)

// File is a parsed markdown document: its source, a line index over the
// source and the tree built from it.
type File struct {
	Path    string
	Context *Context
	Lines   []Line
	Root    *SourceFile
}

// Line is one line of a File as byte offsets into its source. Content is
// [Start, Break); the line terminator, "\n" or "\r\n", is [Break, End).
// The last line has Break == End.
type Line struct {
	Start int
	Break int
	End   int
}

// NewFile creates a File over source with its line index built.
// Root is left for the producer to fill in.
func NewFile(path, source string) *File {
	return &File{
		Path:    path,
		Context: NewContext(source),
		Lines:   IndexLines(source),
	}
}

// Source returns the file's source text.
func (f *File) Source() string {
	return f.Context.Source()
}

// IndexLines splits source into lines. Empty source has no lines; any
// other source has one more line than it has newlines.
func IndexLines(source string) []Line {
	if source == "" {
		return nil
	}

	lines := make([]Line, 0, strings.Count(source, "\n")+1)
	start := 0
	for {
		nl := strings.IndexByte(source[start:], '\n')
		if nl < 0 {
			break
		}
		end := start + nl + 1
		brk := end - 1
		if brk > start && source[brk-1] == '\r' {
			brk--
		}
		lines = append(lines, Line{Start: start, Break: brk, End: end})
		start = end
	}
	return append(lines, Line{Start: start, Break: len(source), End: len(source)})
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to a 1-based line and byte column. The
// offset just past the source maps onto the last line. Offsets outside
// the source give (0, 0).
func (f *File) LineAt(offset int) (int, int) {
	if offset < 0 || offset > f.Context.Len() || len(f.Lines) == 0 {
		return 0, 0
	}

	idx, _ := slices.BinarySearchFunc(f.Lines, offset, func(l Line, off int) int {
		if l.End <= off {
			return -1
		}
		return 1
	})
	idx = min(idx, len(f.Lines)-1)

	return idx + 1, offset - f.Lines[idx].Start + 1
}

// Offset converts a 1-based line and column back to a byte offset. The
// column may point at the line terminator or just past it.
func (f *File) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}
	l := f.Lines[line-1]
	if offset := l.Start + col - 1; offset <= l.End {
		return offset, true
	}
	return 0, false
}

// LineContent returns the text of a 1-based line without its terminator,
// or "" when there is no such line.
func (f *File) LineContent(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}
	l := f.Lines[line-1]
	return f.Source()[l.Start:l.Break]
}

// Position is a 1-based line and byte column.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether p points into a file.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// PositionOf returns where n starts and ends.
func (f *File) PositionOf(n Ranged) (Position, Position) {
	return f.Span(n.SourceRange())
}

// Span returns the positions of both ends of r.
func (f *File) Span(r Range) (Position, Position) {
	var start, end Position
	start.Line, start.Column = f.LineAt(r.Start)
	end.Line, end.Column = f.LineAt(r.End)
	return start, end
}
