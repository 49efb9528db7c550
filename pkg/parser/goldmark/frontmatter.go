package goldmark

import (
	"bytes"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// frontMatter finds a YAML header at the very start of source: a "---"
// line, the document, and a closing "---" or "..." line.
func frontMatter(source []byte) (*mdast.YamlHeader, bool) {
	first, ok := cutLine(source, 0)
	if !ok || string(bytes.TrimRight(first, " \t")) != "---" {
		return nil, false
	}

	bodyStart := nextLineStart(source, 0)
	for pos := bodyStart; pos < len(source); pos = nextLineStart(source, pos) {
		line, _ := cutLine(source, pos)
		trimmed := string(bytes.TrimRight(line, " \t"))
		if trimmed == "---" || trimmed == "..." {
			return &mdast.YamlHeader{
				Range: mdast.Range{Start: 0, End: pos + len(line)},
				Value: string(source[bodyStart:pos]),
			}, true
		}
	}

	return nil, false
}

// cutLine returns the line starting at pos without its line ending.
// The bool is false when pos is at or past the end of source.
func cutLine(source []byte, pos int) ([]byte, bool) {
	if pos >= len(source) {
		return nil, false
	}
	rest := source[pos:]
	if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	return bytes.TrimSuffix(rest, []byte{'\r'}), true
}

func nextLineStart(source []byte, pos int) int {
	if idx := bytes.IndexByte(source[pos:], '\n'); idx >= 0 {
		return pos + idx + 1
	}
	return len(source)
}

// maskFrontMatter returns a copy of source with the header replaced by
// spaces. Line endings are kept so that offsets and line numbers match.
func maskFrontMatter(source []byte, header *mdast.YamlHeader) []byte {
	masked := bytes.Clone(source)
	if header == nil {
		return masked
	}
	for i := header.Start; i < header.End; i++ {
		if masked[i] != '\n' && masked[i] != '\r' {
			masked[i] = ' '
		}
	}
	return masked
}
