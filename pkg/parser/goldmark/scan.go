package goldmark

import (
	"bytes"
	"unicode/utf8"

	"github.com/yuin/goldmark/text"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// The helpers below recover node boundaries that goldmark does not record,
// such as delimiters, list markers, fences and link tails, by looking at the
// bytes around the segments it does record.

// span builds a range clamped to the source and aligned to character
// boundaries, so that every range handed out is safe to slice.
func (m *mapper) span(start, end int) mdast.Range {
	n := len(m.source)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)

	for start > 0 && start < n && !utf8.RuneStart(m.source[start]) {
		start--
	}
	for end < n && !utf8.RuneStart(m.source[end]) {
		end++
	}

	return mdast.Range{Start: start, End: end}
}

func (m *mapper) at(pos int) byte {
	if pos < 0 || pos >= len(m.source) {
		return 0
	}
	return m.source[pos]
}

// linesRange returns the range covered by a block's line segments with
// trailing whitespace removed.
func (m *mapper) linesRange(lines *text.Segments) (mdast.Range, bool) {
	if lines == nil || lines.Len() == 0 {
		return mdast.Range{}, false
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)

	return m.span(first.Start, m.trimRight(first.Start, last.Stop)), true
}

// linesValue concatenates the values of a block's line segments.
func (m *mapper) linesValue(lines *text.Segments) string {
	if lines == nil {
		return ""
	}

	var buf bytes.Buffer
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(m.source))
	}
	return buf.String()
}

// trimRight moves end back over spaces, tabs and line endings, not past floor.
func (m *mapper) trimRight(floor, end int) int {
	for end > floor && isSpaceOrNewline(m.at(end-1)) {
		end--
	}
	return end
}

// skipBack moves pos back over spaces and tabs, not past floor.
func (m *mapper) skipBack(floor, pos int) int {
	for pos > floor && isSpace(m.at(pos-1)) {
		pos--
	}
	return pos
}

// skipPrefix moves pos forward over whitespace, line endings, blockquote
// markers and hidden definitions: everything that can sit between the end
// of one block and the start of the next.
func (m *mapper) skipPrefix(pos int) int {
	return m.skipFrom(pos, true)
}

// skipBlank is skipPrefix without stepping over blockquote markers.
func (m *mapper) skipBlank(pos int) int {
	return m.skipFrom(pos, false)
}

func (m *mapper) skipFrom(pos int, quotes bool) int {
	for pos < len(m.source) {
		if end, ok := m.hiddenAt(pos); ok {
			pos = end
			continue
		}
		c := m.source[pos]
		if !isSpaceOrNewline(c) && (!quotes || c != '>') {
			break
		}
		pos++
	}
	return pos
}

func (m *mapper) hiddenAt(pos int) (int, bool) {
	for _, r := range m.hidden {
		if r.Start == pos && r.End > pos {
			return r.End, true
		}
	}
	return 0, false
}

// skipLinePrefix moves pos over indentation and blockquote markers
// without leaving the line.
func (m *mapper) skipLinePrefix(pos int) int {
	for isSpace(m.at(pos)) || m.at(pos) == '>' {
		pos++
	}
	return pos
}

// skipSpaces moves pos over spaces and tabs.
func (m *mapper) skipSpaces(pos int) int {
	for isSpace(m.at(pos)) {
		pos++
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line that holds pos,
// or the end of the source.
func (m *mapper) lineEnd(pos int) int {
	if pos >= len(m.source) {
		return len(m.source)
	}
	if idx := bytes.IndexByte(m.source[pos:], '\n'); idx >= 0 {
		return pos + idx
	}
	return len(m.source)
}

// nextLine returns the start of the line after the one holding pos, or -1.
func (m *mapper) nextLine(pos int) int {
	end := m.lineEnd(pos)
	if end >= len(m.source) {
		return -1
	}
	return end + 1
}

// breakEnd returns the end of a line break starting at pos: trailing
// spaces, an optional backslash and the newline itself.
func (m *mapper) breakEnd(pos int) int {
	end := pos
	for end < len(m.source) && (isSpace(m.at(end)) || m.at(end) == '\\' || m.at(end) == '\r') {
		end++
	}
	if m.at(end) == '\n' {
		return end + 1
	}
	return pos
}

// indexFrom returns the offset of the first needle at or after pos, or -1.
func (m *mapper) indexFrom(pos int, needle []byte) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.source) {
		return -1
	}
	if idx := bytes.Index(m.source[pos:], needle); idx >= 0 {
		return pos + idx
	}
	return -1
}

// runLength counts consecutive c starting at pos.
func (m *mapper) runLength(pos int, c byte) int {
	n := 0
	for m.at(pos+n) == c {
		n++
	}
	return n
}

// expandDelimiters grows r by up to limit copies of c on each side,
// taking the same number from both.
func (m *mapper) expandDelimiters(r mdast.Range, c byte, limit int) mdast.Range {
	n := 0
	for n < limit && m.at(r.Start-1-n) == c && m.at(r.End+n) == c {
		n++
	}
	return m.span(r.Start-n, r.End+n)
}

// listMarkerEnd returns the end of the list marker at pos, or pos when
// there is none.
func (m *mapper) listMarkerEnd(pos int) int {
	switch m.at(pos) {
	case '-', '+', '*':
		return pos + 1
	}

	end := pos
	for isDigit(m.at(end)) {
		end++
	}
	if end > pos && (m.at(end) == '.' || m.at(end) == ')') {
		return end + 1
	}
	return pos
}

// matchParen returns the offset of the ')' closing the '(' at open, or -1.
// Backslash escapes, <...> destinations and quoted titles are skipped.
func (m *mapper) matchParen(open int) int {
	depth := 0
	pos := open
	for pos < len(m.source) {
		switch c := m.source[pos]; c {
		case '\\':
			pos++
		case '(':
			depth++
			if depth == 1 {
				next := m.skipWhitespace(pos + 1)
				if m.at(next) == '<' {
					if closeIdx := m.indexFrom(next, []byte{'>'}); closeIdx >= 0 {
						pos = closeIdx
					}
				}
			}
		case ')':
			depth--
			if depth == 0 {
				return pos
			}
		case '"', '\'':
			if depth == 1 {
				pos = m.closingQuote(pos, c)
			}
		}
		pos++
	}
	return -1
}

func (m *mapper) closingQuote(open int, quote byte) int {
	for pos := open + 1; pos < len(m.source); pos++ {
		switch m.source[pos] {
		case '\\':
			pos++
		case quote:
			return pos
		}
	}
	return open
}

func (m *mapper) skipWhitespace(pos int) int {
	for pos < len(m.source) && isSpaceOrNewline(m.source[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpaceOrNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
