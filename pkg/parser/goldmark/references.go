package goldmark

import (
	"bytes"
	"slices"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// goldmark removes link reference definitions and footnote definitions
// from the block tree. The functions here find them in the source again so
// that they can be reported as nodes at their original position.

// collectOpaque records the extent of code and HTML blocks.
func (m *mapper) collectOpaque(doc ast.Node) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock:
			if r, ok := m.linesRange(n.Lines()); ok {
				m.opaque = append(m.opaque, r)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

// findDefinition returns the offset of the first needle that starts a
// definition line outside code and HTML blocks, or -1.
func (m *mapper) findDefinition(needle []byte) int {
	for pos := m.indexFrom(0, needle); pos >= 0; pos = m.indexFrom(pos+1, needle) {
		if m.atLineStart(pos) && !m.isOpaque(pos) {
			return pos
		}
	}
	return -1
}

// atLineStart reports whether only indentation and blockquote or list
// markers precede pos on its line.
func (m *mapper) atLineStart(pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch c := m.source[i]; {
		case c == '\n':
			return true
		case isSpace(c), c == '>', c == '-', c == '+', c == '*', c == '.', c == ')', isDigit(c):
		default:
			return false
		}
	}
	return true
}

func (m *mapper) isOpaque(pos int) bool {
	for _, r := range m.opaque {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// mapReferences turns the parser's link reference definitions into nodes.
// Definitions that cannot be located in the source are returned in
// missing.
func (m *mapper) mapReferences(refs []parser.Reference) (nodes []*mdast.LinkReference, missing []string) {
	for _, ref := range refs {
		label := ref.Label()
		start := m.findDefinition(slices.Concat([]byte{'['}, label, []byte("]:")))
		if start < 0 {
			missing = append(missing, string(label))
			continue
		}

		colon := start + len(label) + 3
		end := m.trimRight(colon, m.lineEnd(colon))
		destEnd := colon
		if dest := ref.Destination(); len(dest) > 0 {
			if pos := m.indexFrom(colon, dest); pos >= 0 && m.newlinesBetween(colon, pos) <= 1 {
				destEnd = pos + len(dest)
				end = max(end, m.trimRight(pos, m.lineEnd(destEnd)))
			}
		}
		if title := ref.Title(); len(title) > 0 {
			if pos := m.indexFrom(destEnd, title); pos >= 0 && m.newlinesBetween(destEnd, pos) <= 1 {
				end = max(end, m.trimRight(pos, m.lineEnd(pos+len(title))))
			}
		}

		nodes = append(nodes, &mdast.LinkReference{
			Range: m.span(start, end),
			Name:  string(label),
			Link:  string(ref.Destination()),
			Title: string(ref.Title()),
		})
	}

	slices.SortFunc(nodes, func(a, b *mdast.LinkReference) int {
		return a.Start - b.Start
	})
	return nodes, missing
}

func (m *mapper) newlinesBetween(from, to int) int {
	if from >= to {
		return 0
	}
	return bytes.Count(m.source[from:to], []byte{'\n'})
}

// registerFootnotes records the label of every footnote so that footnote
// links can be resolved while mapping inlines.
func (m *mapper) registerFootnotes(list *east.FootnoteList) {
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		if fn, ok := child.(*east.Footnote); ok {
			m.footnotes[fn.Index] = string(fn.Ref)
		}
	}
}

// mapFootnotes maps footnote definitions, each from its own label.
func (m *mapper) mapFootnotes(list *east.FootnoteList) (nodes []*mdast.FootnoteDefinition, missing []string) {
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		fn, ok := child.(*east.Footnote)
		if !ok {
			continue
		}

		name := string(fn.Ref)
		needle := []byte("[^" + name + "]:")
		start := m.findDefinition(needle)
		if start < 0 {
			missing = append(missing, name)
			continue
		}

		labelEnd := start + len(needle)
		children := m.mapBlocks(fn, labelEnd)
		nodes = append(nodes, &mdast.FootnoteDefinition{
			Range:    cover(m.span(start, labelEnd), children),
			Name:     name,
			Children: children,
		})
	}

	slices.SortFunc(nodes, func(a, b *mdast.FootnoteDefinition) int {
		return a.Start - b.Start
	})
	return nodes, missing
}

// hide marks r as taken by a definition.
func (m *mapper) hide(r mdast.Range) {
	m.hidden = append(m.hidden, r)
}

// insert places n among children by source position, descending into the
// container that holds it.
func (m *mapper) insert(children []mdast.Node, n mdast.Node) []mdast.Node {
	r := n.SourceRange()

	idx := slices.IndexFunc(children, func(c mdast.Node) bool {
		return c.SourceRange().Start > r.Start
	})
	if idx < 0 {
		idx = len(children)
	}

	if idx > 0 {
		prev := children[idx-1]
		if m.holds(prev.SourceRange(), r.Start) || m.continues(prev, r.Start) {
			switch c := prev.(type) {
			case *mdast.BlockQuote:
				c.Children = m.insert(c.Children, n)
				c.Range = c.Range.Cover(r)
				return children

			case *mdast.FootnoteDefinition:
				c.Children = m.insert(c.Children, n)
				c.Range = c.Range.Cover(r)
				return children

			case *mdast.List:
				c.Children = m.insert(c.Children, n)
				c.Range = c.Range.Cover(r)
				return children

			case *mdast.Item:
				m.insertIntoItem(c, n)
				c.Range = c.Range.Cover(r)
				return children
			}
		}
	}

	return slices.Insert(children, idx, n)
}

func (m *mapper) insertIntoItem(item *mdast.Item, n mdast.Node) {
	pos := n.SourceRange().Start
	if len(item.SubLists) == 0 || pos < item.SubLists[0].SourceRange().Start {
		item.Children = m.insert(item.Children, n)
		return
	}

	for _, sub := range item.SubLists {
		if m.holds(sub.SourceRange(), pos) || m.continues(sub, pos) {
			item.SubLists = m.insert(item.SubLists, n)
			return
		}
	}

	// The definition follows the sub lists, which stop being trailing.
	item.Children = m.insert(append(item.Children, item.SubLists...), n)
	item.SubLists = nil
}

// continues reports whether pos lies in the indented continuation of n,
// a list or list item that ends before pos. goldmark drops a paragraph made
// only of definitions, so a loose item can end lines before them.
func (m *mapper) continues(n mdast.Node, pos int) bool {
	switch c := n.(type) {
	case *mdast.List:
		if len(c.Children) == 0 {
			return false
		}
		return m.continues(c.Children[len(c.Children)-1], pos)

	case *mdast.Item:
		if pos < c.End {
			return false
		}
		column := m.contentColumn(c.Start)
		for line := m.nextLine(c.End - 1); line >= 0 && line <= pos; line = m.nextLine(line) {
			if pos <= m.lineEnd(line) {
				return pos-line >= column
			}
			content := m.skipLinePrefix(line)
			blank := content >= m.trimRight(line, m.lineEnd(line))
			if !blank && content-line < column {
				return false
			}
		}
	}
	return false
}

// contentColumn returns the column, counted in bytes from the start of the
// line, where the content of the list item whose marker is at pos begins.
func (m *mapper) contentColumn(pos int) int {
	lineStart := bytes.LastIndexByte(m.source[:pos], '\n') + 1
	markerEnd := m.listMarkerEnd(pos)

	content := m.skipSpaces(markerEnd)
	if gap := content - markerEnd; gap == 0 || gap > 4 || content >= m.trimRight(markerEnd, m.lineEnd(markerEnd)) {
		content = markerEnd + 1
	}
	return content - lineStart
}

// holds reports whether pos falls inside r or on the line where r ends.
func (m *mapper) holds(r mdast.Range, pos int) bool {
	if pos < r.Start {
		return false
	}
	if pos < r.End {
		return true
	}
	return m.newlinesBetween(r.End, pos) == 0
}
