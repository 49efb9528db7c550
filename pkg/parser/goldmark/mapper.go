package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// mapper converts a goldmark AST into mdast nodes.
//
// goldmark records segments for text content only, so every mapping
// function takes a cursor: the offset where the previous sibling ended.
// Markers that carry no segment (list bullets, quote markers, fences) are
// found by scanning forward from the cursor.
type mapper struct {
	source []byte

	// footnotes maps goldmark footnote indexes to their labels.
	footnotes map[int]string

	// hidden holds definitions that goldmark lifted out of the block flow.
	// Scans that look for the next block step over them.
	hidden []mdast.Range

	// opaque holds code and HTML blocks, where definition-like text is
	// literal content.
	opaque []mdast.Range
}

func newMapper(source []byte) *mapper {
	return &mapper{
		source:    source,
		footnotes: make(map[int]string),
	}
}

// mapBlocks maps the block children of parent in order.
func (m *mapper) mapBlocks(parent ast.Node, cursor int) []mdast.Node {
	var out []mdast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, n := range m.mapBlock(child, cursor) {
			cursor = max(cursor, n.SourceRange().End)
			out = append(out, n)
		}
	}
	return out
}

func (m *mapper) mapBlock(gn ast.Node, cursor int) []mdast.Node {
	switch n := gn.(type) {
	case *ast.Paragraph:
		return one(m.mapParagraph(n, cursor))

	case *ast.TextBlock:
		return m.mapInlines(n, cursor)

	case *ast.Heading:
		return one(m.mapHeading(n, cursor))

	case *ast.ThematicBreak:
		start := m.skipPrefix(cursor)
		return one(&mdast.HorizontalRule{Range: m.span(start, m.trimRight(start, m.lineEnd(start)))})

	case *ast.FencedCodeBlock:
		return one(m.mapFencedCodeBlock(n, cursor))

	case *ast.CodeBlock:
		return one(m.mapIndentedCodeBlock(n, cursor))

	case *ast.Blockquote:
		return one(m.mapBlockquote(n, cursor))

	case *ast.List:
		return one(m.mapList(n, cursor))

	case *ast.ListItem:
		return one(m.mapListItem(n, cursor))

	case *ast.HTMLBlock:
		return one(m.mapHTMLBlock(n, cursor))

	case *east.Table:
		return one(m.mapTable(n, cursor))

	case *east.FootnoteList:
		// Definitions are mapped separately and put back at their
		// source position.
		return nil

	default:
		r, ok := m.linesRange(gn.Lines())
		if !ok {
			start := m.skipPrefix(cursor)
			r = m.span(start, start)
		}
		return one(&mdast.NotImplemented{Range: r})
	}
}

func (m *mapper) mapParagraph(p *ast.Paragraph, cursor int) *mdast.Paragraph {
	children := m.mapInlines(p, cursor)

	r, ok := m.linesRange(p.Lines())
	if !ok {
		start := m.skipPrefix(cursor)
		r = m.span(start, start)
	}

	return &mdast.Paragraph{Range: cover(r, children), Children: children}
}

func (m *mapper) mapHeading(h *ast.Heading, cursor int) *mdast.Heading {
	start := m.skipPrefix(cursor)
	children := m.mapInlines(h, start)
	lines := h.Lines()

	var r mdast.Range
	switch {
	case m.isATXHeading(start):
		end := start + m.runLength(start, '#')
		if lines.Len() > 0 {
			end = max(end, lines.At(lines.Len()-1).Stop)
		}
		r = m.span(start, m.trimRight(start, m.lineEnd(end)))

	case lines.Len() > 0:
		// Setext: content lines followed by the underline.
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		end := m.trimRight(first.Start, last.Stop)
		if next := m.nextLine(last.Start); next >= 0 {
			end = max(end, m.trimRight(next, m.lineEnd(next)))
		}
		r = m.span(first.Start, end)

	default:
		r = m.span(start, m.trimRight(start, m.lineEnd(start)))
	}

	return &mdast.Heading{Range: cover(r, children), Level: h.Level, Children: children}
}

func (m *mapper) isATXHeading(pos int) bool {
	n := m.runLength(pos, '#')
	if n < 1 || n > 6 {
		return false
	}
	next := m.at(pos + n)
	return next == 0 || isSpaceOrNewline(next)
}

func (m *mapper) mapFencedCodeBlock(fb *ast.FencedCodeBlock, cursor int) *mdast.CodeBlock {
	start := m.skipPrefix(cursor)
	if c := m.at(start); c != '`' && c != '~' {
		start = m.findFence(cursor)
	}

	fence := m.at(start)
	width := m.runLength(start, fence)
	end := m.trimRight(start, m.lineEnd(start))

	lines := fb.Lines()
	closeFrom := m.nextLine(start)
	if lines.Len() > 0 {
		last := lines.At(lines.Len() - 1)
		end = max(end, m.trimRight(start, last.Stop))
		closeFrom = m.nextLine(last.Start)
	}
	if closeFrom >= 0 {
		pos := m.skipLinePrefix(closeFrom)
		if m.at(pos) == fence && m.runLength(pos, fence) >= width {
			end = m.trimRight(pos, m.lineEnd(pos))
		}
	}

	var tag string
	if fb.Info != nil {
		tag = strings.TrimSpace(string(fb.Info.Segment.Value(m.source)))
	}

	return &mdast.CodeBlock{
		Range:  m.span(start, end),
		Tag:    tag,
		Fenced: true,
		Code:   m.linesValue(lines),
	}
}

// findFence returns the first fence opener at or after pos.
func (m *mapper) findFence(pos int) int {
	best := -1
	for _, fence := range [][]byte{[]byte("```"), []byte("~~~")} {
		if idx := m.indexFrom(pos, fence); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	if best < 0 {
		return pos
	}
	return best
}

func (m *mapper) mapIndentedCodeBlock(cb *ast.CodeBlock, cursor int) *mdast.CodeBlock {
	lines := cb.Lines()
	if lines.Len() == 0 {
		start := m.skipPrefix(cursor)
		return &mdast.CodeBlock{Range: m.span(start, start)}
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	start := m.skipBack(cursor, first.Start)

	return &mdast.CodeBlock{
		Range: m.span(start, m.trimRight(start, last.Stop)),
		Code:  m.linesValue(lines),
	}
}

func (m *mapper) mapBlockquote(bq *ast.Blockquote, cursor int) *mdast.BlockQuote {
	children := m.mapBlocks(bq, cursor)

	var start int
	if len(children) > 0 {
		// The marker is the '>' right before the first child's content.
		start = m.skipBack(cursor, children[0].SourceRange().Start)
		if start > cursor && m.at(start-1) == '>' {
			start--
		}
	} else {
		start = m.skipBlank(cursor)
		if m.at(start) != '>' {
			if idx := m.indexFrom(cursor, []byte{'>'}); idx >= 0 {
				start = idx
			}
		}
	}

	return &mdast.BlockQuote{Range: cover(m.span(start, start+1), children), Children: children}
}

func (m *mapper) mapList(list *ast.List, cursor int) *mdast.List {
	children := m.mapBlocks(list, cursor)

	var r mdast.Range
	if len(children) > 0 {
		r = cover(children[0].SourceRange(), children)
	} else {
		start := m.skipPrefix(cursor)
		r = m.span(start, start)
	}

	out := &mdast.List{Range: r, Ordered: list.IsOrdered(), Children: children}
	if out.Ordered && list.Start > 0 {
		out.StartIndex = uint64(list.Start)
	}
	return out
}

func (m *mapper) mapListItem(li *ast.ListItem, cursor int) *mdast.Item {
	start := m.skipPrefix(cursor)
	markerEnd := m.listMarkerEnd(start)

	children := m.mapBlocks(li, markerEnd)
	marker, children := m.liftTaskMarker(children)

	// Lists that trail the item's content are its sub lists; a list
	// followed by more content stays in place to keep document order.
	split := len(children)
	for split > 0 {
		if _, ok := children[split-1].(*mdast.List); !ok {
			break
		}
		split--
	}

	item := &mdast.Item{Marker: marker}
	if split > 0 {
		item.Children = children[:split]
	}
	if split < len(children) {
		item.SubLists = children[split:]
	}

	r := cover(m.span(start, markerEnd), children)
	if marker != nil {
		r = r.Cover(marker.Range)
	}
	item.Range = r
	return item
}

// liftTaskMarker takes a leading task checkbox out of the item content.
func (m *mapper) liftTaskMarker(children []mdast.Node) (*mdast.TaskListMarker, []mdast.Node) {
	if len(children) == 0 {
		return nil, children
	}

	switch first := children[0].(type) {
	case *mdast.TaskListMarker:
		return first, children[1:]

	case *mdast.Paragraph:
		if len(first.Children) == 0 {
			return nil, children
		}
		marker, ok := first.Children[0].(*mdast.TaskListMarker)
		if !ok {
			return nil, children
		}
		first.Children = first.Children[1:]
		if len(first.Children) == 0 {
			return marker, children[1:]
		}
		first.Start = min(m.skipSpaces(marker.End), first.Children[0].SourceRange().Start)
		return marker, children
	}

	return nil, children
}

func (m *mapper) mapHTMLBlock(hb *ast.HTMLBlock, cursor int) *mdast.Html {
	r, ok := m.linesRange(hb.Lines())
	if hb.HasClosure() {
		closure := hb.ClosureLine
		end := m.trimRight(closure.Start, closure.Stop)
		if ok {
			r = m.span(r.Start, max(r.End, end))
		} else {
			r = m.span(closure.Start, end)
			ok = true
		}
	}
	if !ok {
		start := m.skipPrefix(cursor)
		r = m.span(start, start)
	}

	return &mdast.Html{Range: r, Value: string(m.source[r.Start:r.End])}
}

func (m *mapper) mapTable(tbl *east.Table, cursor int) *mdast.Table {
	out := &mdast.Table{}
	for _, a := range tbl.Alignments {
		out.ColumnAlignment = append(out.ColumnAlignment, columnAlignment(a))
	}

	pos := cursor
	var nodes []mdast.Node
	for child := tbl.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			cells, r := m.mapRow(row, pos)
			out.Header = &mdast.TableHead{Range: r, Cells: cells}
			nodes = append(nodes, out.Header)
			pos = r.End
		case *east.TableRow:
			cells, r := m.mapRow(row, pos)
			tr := &mdast.TableRow{Range: r, Cells: cells}
			out.Rows = append(out.Rows, tr)
			nodes = append(nodes, tr)
			pos = r.End
		}
	}

	if len(nodes) > 0 {
		out.Range = cover(nodes[0].SourceRange(), nodes)
	} else {
		start := m.skipPrefix(cursor)
		out.Range = m.span(start, start)
	}
	return out
}

// mapRow maps the cells of a header or body row. The row range extends
// over the outer pipes when present.
func (m *mapper) mapRow(row ast.Node, cursor int) ([]*mdast.TableCell, mdast.Range) {
	var cells []*mdast.TableCell
	pos := m.skipPrefix(cursor)
	rowStart := pos

	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*east.TableCell)
		if !ok {
			continue
		}

		children := m.mapInlines(cell, pos)
		r, ok := m.linesRange(cell.Lines())
		if !ok {
			r = m.span(pos, pos)
		}
		r = cover(r, children)

		cells = append(cells, &mdast.TableCell{Range: r, Children: children})
		pos = max(pos, r.End)
	}

	if len(cells) == 0 {
		return nil, m.span(rowStart, rowStart)
	}

	start := m.skipBack(0, cells[0].Start)
	if m.at(start-1) == '|' {
		start--
	}
	end := pos
	if after := m.skipSpaces(end); m.at(after) == '|' {
		end = after + 1
	}

	return cells, m.span(min(start, cells[0].Start), end)
}

func columnAlignment(a east.Alignment) mdast.ColumnAlignment {
	switch a {
	case east.AlignLeft:
		return mdast.AlignLeft
	case east.AlignCenter:
		return mdast.AlignCenter
	case east.AlignRight:
		return mdast.AlignRight
	default:
		return mdast.AlignNone
	}
}

// mapInlines maps the inline children of parent, merging adjacent text.
func (m *mapper) mapInlines(parent ast.Node, cursor int) []mdast.Node {
	var out []mdast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, n := range m.mapInline(child, cursor) {
			cursor = max(cursor, n.SourceRange().End)
			out = appendInline(out, n)
		}
	}
	return out
}

func appendInline(out []mdast.Node, n mdast.Node) []mdast.Node {
	text, ok := n.(*mdast.Text)
	if !ok || len(out) == 0 {
		return append(out, n)
	}
	prev, ok := out[len(out)-1].(*mdast.Text)
	if !ok || prev.End != text.Start {
		return append(out, n)
	}
	prev.End = text.End
	prev.Value += text.Value
	return out
}

func (m *mapper) mapInline(gn ast.Node, cursor int) []mdast.Node {
	switch n := gn.(type) {
	case *ast.Text:
		return m.mapText(n)

	case *ast.String:
		if len(n.Value) == 0 {
			return nil
		}
		pos := m.indexFrom(cursor, n.Value)
		if pos < 0 {
			return nil
		}
		return one(&mdast.Text{Range: m.span(pos, pos+len(n.Value)), Value: string(n.Value)})

	case *ast.Emphasis:
		decoration := mdast.Emphasis
		if n.Level >= 2 {
			decoration = mdast.Strong
		}
		return one(m.mapDecoration(n, cursor, decoration, n.Level))

	case *east.Strikethrough:
		return one(m.mapDecoration(n, cursor, mdast.Strikethrough, 2))

	case *ast.CodeSpan:
		return one(m.mapCodeSpan(n, cursor))

	case *ast.Link:
		return one(m.mapLink(n, cursor))

	case *ast.Image:
		return one(m.mapImage(n, cursor))

	case *ast.AutoLink:
		return one(m.mapAutoLink(n, cursor))

	case *ast.RawHTML:
		if n.Segments == nil || n.Segments.Len() == 0 {
			return nil
		}
		first := n.Segments.At(0)
		last := n.Segments.At(n.Segments.Len() - 1)
		r := m.span(first.Start, last.Stop)
		return one(&mdast.Html{Range: r, Value: string(m.source[r.Start:r.End])})

	case *east.TaskCheckBox:
		pos := m.indexFrom(cursor, []byte{'['})
		if pos < 0 {
			return nil
		}
		return one(&mdast.TaskListMarker{Range: m.span(pos, pos+3), Checked: n.IsChecked})

	case *east.FootnoteLink:
		name, ok := m.footnotes[n.Index]
		if !ok {
			return nil
		}
		needle := []byte("[^" + name + "]")
		pos := m.indexFrom(cursor, needle)
		if pos < 0 {
			return nil
		}
		return one(&mdast.FootnoteReference{Range: m.span(pos, pos+len(needle)), Name: name})

	case *east.FootnoteBacklink:
		return nil

	default:
		children := m.mapInlines(gn, cursor)
		if len(children) == 0 {
			return nil
		}
		return one(&mdast.NotImplemented{Range: cover(children[0].SourceRange(), children)})
	}
}

func (m *mapper) mapText(t *ast.Text) []mdast.Node {
	seg := t.Segment

	var out []mdast.Node
	if !seg.IsEmpty() {
		value := seg.Value(m.source)
		if !t.IsRaw() {
			value = unescape(value)
		}
		out = append(out, &mdast.Text{Range: m.span(seg.Start, seg.Stop), Value: string(value)})
	}

	if t.SoftLineBreak() || t.HardLineBreak() {
		if end := m.breakEnd(seg.Stop); end > seg.Stop {
			r := m.span(seg.Stop, end)
			if t.HardLineBreak() {
				out = append(out, &mdast.HardBreak{Range: r})
			} else {
				out = append(out, &mdast.SoftBreak{Range: r})
			}
		}
	}

	return out
}

func unescape(b []byte) []byte {
	return util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(b)))
}

func (m *mapper) mapDecoration(gn ast.Node, cursor int, kind mdast.TextDecorationKind, width int) mdast.Node {
	children := m.mapInlines(gn, cursor)
	if len(children) == 0 {
		return nil
	}

	r := cover(children[0].SourceRange(), children)
	delim := m.at(r.Start - 1)
	if kind == mdast.Strikethrough {
		delim = '~'
	} else if delim != '*' && delim != '_' {
		delim = '*'
	}

	return &mdast.TextDecoration{
		Range:      m.expandDelimiters(r, delim, width),
		Decoration: kind,
		Children:   children,
	}
}

func (m *mapper) mapCodeSpan(cs *ast.CodeSpan, cursor int) *mdast.Code {
	var (
		code  bytes.Buffer
		r     mdast.Range
		found bool
	)
	for child := cs.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			code.Write(t.Segment.Value(m.source))
			seg := m.span(t.Segment.Start, t.Segment.Stop)
			if found {
				r = r.Cover(seg)
			} else {
				r, found = seg, true
			}
		case *ast.String:
			code.Write(t.Value)
		}
	}

	var start, end int
	if found {
		start = r.Start
		for isSpaceOrNewline(m.at(start - 1)) {
			start--
		}
		ticks := 0
		for m.at(start-1) == '`' {
			start--
			ticks++
		}
		end = m.skipWhitespace(r.End)
		end += min(m.runLength(end, '`'), ticks)
	} else {
		start = max(m.indexFrom(cursor, []byte{'`'}), cursor)
		ticks := m.runLength(start, '`')
		end = start + ticks
		if closing := m.indexFrom(end, bytes.Repeat([]byte{'`'}, max(ticks, 1))); closing >= 0 {
			end = closing + ticks
		}
	}

	value := strings.ReplaceAll(code.String(), "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return &mdast.Code{Range: m.span(start, end), Code: value}
}

type linkTail uint8

const (
	tailShortcut linkTail = iota
	tailCollapsed
	tailFull
	tailInline
)

// linkBounds locates the brackets around a link or image label and
// classifies what follows the closing bracket. It returns the offset of
// the opening bracket, the offset of the closing bracket, the end of the
// whole construct, the tail kind and, for full references, the label.
func (m *mapper) linkBounds(children []mdast.Node, cursor int) (int, int, int, linkTail, string) {
	var open, closing int
	if len(children) > 0 {
		r := cover(children[0].SourceRange(), children)
		open = r.Start - 1
		if m.at(open) != '[' {
			open = bytes.LastIndexByte(m.source[min(cursor, r.Start):r.Start], '[')
			if open >= 0 {
				open += min(cursor, r.Start)
			} else {
				open = r.Start
			}
		}
		closing = m.indexFrom(r.End, []byte{']'})
	} else {
		open = max(m.indexFrom(cursor, []byte{'['}), cursor)
		closing = m.indexFrom(open+1, []byte{']'})
	}
	if closing < 0 {
		return open, open, open + 1, tailShortcut, ""
	}

	after := closing + 1
	switch m.at(after) {
	case '(':
		if end := m.matchParen(after); end >= 0 {
			return open, closing, end + 1, tailInline, ""
		}
	case '[':
		if end := m.indexFrom(after+1, []byte{']'}); end >= 0 {
			label := string(m.source[after+1 : end])
			if strings.TrimSpace(label) == "" {
				return open, closing, end + 1, tailCollapsed, ""
			}
			return open, closing, end + 1, tailFull, label
		}
	}
	return open, closing, after, tailShortcut, ""
}

func (m *mapper) mapLink(link *ast.Link, cursor int) mdast.Node {
	children := m.mapInlines(link, cursor)
	open, _, end, tail, label := m.linkBounds(children, cursor)
	r := m.span(open, end)

	switch tail {
	case tailInline:
		return &mdast.InlineLink{
			Range:    r,
			Children: children,
			URL:      string(link.Destination),
			Title:    string(link.Title),
		}
	case tailFull:
		return &mdast.ReferenceLink{Range: r, Children: children, Reference: label}
	default:
		return &mdast.ShortcutLink{Range: r, Children: children}
	}
}

func (m *mapper) mapImage(img *ast.Image, cursor int) mdast.Node {
	children := m.mapInlines(img, cursor)
	open, closing, end, tail, label := m.linkBounds(children, cursor)

	start := open
	if m.at(open-1) == '!' {
		start = open - 1
	}
	r := m.span(start, end)
	alt := plainText(children)

	switch tail {
	case tailInline:
		return &mdast.InlineImage{
			Range: r,
			Alt:   alt,
			URL:   string(img.Destination),
			Title: string(img.Title),
		}
	case tailFull:
		return &mdast.ReferenceImage{Range: r, Alt: alt, Reference: label}
	default:
		return &mdast.ReferenceImage{
			Range:     r,
			Alt:       alt,
			Reference: string(m.source[min(open+1, closing):closing]),
		}
	}
}

func (m *mapper) mapAutoLink(al *ast.AutoLink, cursor int) mdast.Node {
	label := al.Label(m.source)
	if len(label) == 0 {
		return nil
	}
	pos := m.indexFrom(cursor, label)
	if pos < 0 {
		return nil
	}

	text := &mdast.Text{Range: m.span(pos, pos+len(label)), Value: string(label)}
	r := text.Range
	if m.at(pos-1) == '<' && m.at(r.End) == '>' {
		r = m.span(pos-1, r.End+1)
	}

	return &mdast.AutoLink{Range: r, Children: []mdast.Node{text}}
}

// plainText flattens the text content of inline nodes.
func plainText(nodes []mdast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch t := n.(type) {
		case *mdast.Text:
			b.WriteString(t.Value)
		case *mdast.Code:
			b.WriteString(t.Code)
		case *mdast.SoftBreak, *mdast.HardBreak:
			b.WriteByte(' ')
		default:
			b.WriteString(plainText(n.ChildNodes()))
		}
	}
	return b.String()
}

// cover extends r over every node in nodes.
func cover(r mdast.Range, nodes []mdast.Node) mdast.Range {
	for _, n := range nodes {
		r = r.Cover(n.SourceRange())
	}
	return r
}

// one wraps a single node. Mapping functions that can fail return a nil
// interface, never a typed nil pointer.
func one(n mdast.Node) []mdast.Node {
	if n == nil {
		return nil
	}
	return []mdast.Node{n}
}
