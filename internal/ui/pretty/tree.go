package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/kr/pretty"

	"github.com/disrupted/dprint-plugin-markdown/pkg/langdetect"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

const (
	ellipsis       = "…"
	minPreview     = 16
	indentPerLevel = 4
	yamlHeaderName = "YamlHeader"
)

// TreeOptions controls what a TreePrinter shows for each node.
type TreeOptions struct {
	// ShowText adds a quoted preview of text-bearing nodes.
	ShowText bool

	// DetectLanguage guesses a language for untagged code blocks.
	DetectLanguage bool

	// Width caps each line. 0 means DefaultWidth.
	Width int
}

// TreePrinter renders a parsed file as an indented tree.
type TreePrinter struct {
	styles *Styles
	opts   TreeOptions
}

// NewTreePrinter creates a TreePrinter.
func NewTreePrinter(styles *Styles, opts TreeOptions) *TreePrinter {
	if styles == nil {
		styles = NewStyles(false)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &TreePrinter{styles: styles, opts: opts}
}

// Render returns the tree of file, one node per line.
func (p *TreePrinter) Render(file *mdast.File) string {
	if file == nil || file.Root == nil {
		return p.styles.Missing.Render("<no tree>") + "\n"
	}

	root := tree.Root(p.label(file, file.Root, 0)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(p.styles.Enumerator.PaddingRight(1))

	if header := file.Root.YamlHeader; header != nil {
		root.Child(p.headerLabel(file, header))
	}
	for _, child := range file.Root.ChildNodes() {
		root.Child(p.build(file, child, 1))
	}

	return root.String() + "\n"
}

// Write renders file to w.
func (p *TreePrinter) Write(w io.Writer, file *mdast.File) error {
	if _, err := io.WriteString(w, p.Render(file)); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// WriteRaw prints the tree of file as Go syntax.
func WriteRaw(w io.Writer, file *mdast.File) error {
	var root any
	if file != nil {
		root = file.Root
	}
	if _, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(root)); err != nil {
		return fmt.Errorf("write raw tree: %w", err)
	}
	return nil
}

// build returns a plain label for leaves and a subtree otherwise.
func (p *TreePrinter) build(file *mdast.File, n mdast.Node, depth int) any {
	label := p.label(file, n, depth)
	children := n.ChildNodes()
	if len(children) == 0 {
		return label
	}

	sub := tree.Root(label)
	for _, child := range children {
		sub.Child(p.build(file, child, depth+1))
	}
	return sub
}

func (p *TreePrinter) label(file *mdast.File, n mdast.Node, depth int) string {
	kind := n.Kind()
	name := kind.String()

	var b strings.Builder
	switch {
	case kind == mdast.KindNotImplemented:
		b.WriteString(p.styles.Missing.Render(name))
	case kind.IsInline():
		b.WriteString(p.styles.Inline.Render(name))
	default:
		b.WriteString(p.styles.Block.Render(name))
	}

	span := formatSpan(file, n)
	b.WriteByte(' ')
	b.WriteString(p.styles.Range.Render(span))
	plain := len(name) + 1 + len(span)

	attrs := nodeAttrs(n, p.opts.DetectLanguage)
	if len(attrs) > 0 {
		joined := strings.Join(attrs, " ")
		b.WriteByte(' ')
		b.WriteString(p.styles.Attr.Render(joined))
		plain += 1 + utf8.RuneCountInString(joined)
	}

	if p.opts.ShowText {
		if text, ok := previewText(n); ok {
			budget := max(minPreview, p.opts.Width-depth*indentPerLevel-plain-1)
			b.WriteByte(' ')
			b.WriteString(p.styles.Preview.Render(Quote(text, budget)))
		}
	}

	return b.String()
}

func (p *TreePrinter) headerLabel(file *mdast.File, header *mdast.YamlHeader) string {
	span := formatSpan(file, header)
	label := p.styles.Block.Render(yamlHeaderName) + " " + p.styles.Range.Render(span)
	if p.opts.ShowText {
		plain := len(yamlHeaderName) + 1 + len(span)
		budget := max(minPreview, p.opts.Width-indentPerLevel-plain-1)
		label += " " + p.styles.Preview.Render(Quote(header.Value, budget))
	}
	return label
}

// formatSpan formats the range of n as "line:col-line:col".
func formatSpan(file *mdast.File, n mdast.Ranged) string {
	start, end := file.PositionOf(n)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Column, end.Line, end.Column)
}

// Quote returns s as a Go string literal of at most limit runes,
// truncated with an ellipsis.
func Quote(s string, limit int) string {
	quoted := strconv.Quote(s)
	if limit <= 0 || utf8.RuneCountInString(quoted) <= limit {
		return quoted
	}

	runes := []rune(quoted)
	keep := max(limit-2, 1)
	return string(runes[:keep]) + ellipsis + `"`
}

// previewText returns the literal content of text-bearing nodes.
func previewText(n mdast.Node) (string, bool) {
	switch n := n.(type) {
	case *mdast.Text:
		return n.Value, true
	case *mdast.Html:
		return n.Value, true
	case *mdast.Code:
		return n.Code, true
	case *mdast.CodeBlock:
		return n.Code, true
	default:
		return "", false
	}
}

// nodeAttrs lists the kind-specific fields of n as key=value pairs.
func nodeAttrs(n mdast.Node, detect bool) []string {
	v := &attrVisitor{detect: detect}
	mdast.Visit(n, v)
	return v.attrs
}

type attrVisitor struct {
	detect bool
	attrs  []string
}

func (v *attrVisitor) add(key string, value any) {
	v.attrs = append(v.attrs, fmt.Sprintf("%s=%v", key, value))
}

func (v *attrVisitor) addQuoted(key, value string) {
	if value != "" {
		v.attrs = append(v.attrs, key+"="+strconv.Quote(value))
	}
}

func (v *attrVisitor) VisitNotImplemented(*mdast.NotImplemented) {}

func (v *attrVisitor) VisitSourceFile(n *mdast.SourceFile) {
	if n.YamlHeader != nil {
		v.add("front_matter", true)
	}
}

func (v *attrVisitor) VisitHeading(n *mdast.Heading) { v.add("level", n.Level) }

func (v *attrVisitor) VisitParagraph(*mdast.Paragraph) {}

func (v *attrVisitor) VisitBlockQuote(*mdast.BlockQuote) {}

func (v *attrVisitor) VisitText(*mdast.Text) {}

func (v *attrVisitor) VisitTextDecoration(n *mdast.TextDecoration) {
	v.add("decoration", n.Decoration)
}

func (v *attrVisitor) VisitHtml(*mdast.Html) {}

func (v *attrVisitor) VisitFootnoteReference(n *mdast.FootnoteReference) {
	v.addQuoted("name", n.Name)
}

func (v *attrVisitor) VisitFootnoteDefinition(n *mdast.FootnoteDefinition) {
	v.addQuoted("name", n.Name)
}

func (v *attrVisitor) VisitInlineLink(n *mdast.InlineLink) {
	v.addQuoted("url", n.URL)
	v.addQuoted("title", n.Title)
}

func (v *attrVisitor) VisitReferenceLink(n *mdast.ReferenceLink) {
	v.addQuoted("ref", n.Reference)
}

func (v *attrVisitor) VisitShortcutLink(*mdast.ShortcutLink) {}

func (v *attrVisitor) VisitAutoLink(*mdast.AutoLink) {}

func (v *attrVisitor) VisitLinkReference(n *mdast.LinkReference) {
	v.addQuoted("name", n.Name)
	v.addQuoted("link", n.Link)
	v.addQuoted("title", n.Title)
}

func (v *attrVisitor) VisitInlineImage(n *mdast.InlineImage) {
	v.addQuoted("alt", n.Alt)
	v.addQuoted("url", n.URL)
	v.addQuoted("title", n.Title)
}

func (v *attrVisitor) VisitReferenceImage(n *mdast.ReferenceImage) {
	v.addQuoted("alt", n.Alt)
	v.addQuoted("ref", n.Reference)
}

func (v *attrVisitor) VisitList(n *mdast.List) {
	v.add("ordered", n.Ordered)
	if n.Ordered {
		v.add("start", n.StartIndex)
	}
}

func (v *attrVisitor) VisitItem(n *mdast.Item) {
	if n.Marker != nil {
		v.add("task", true)
	}
	if len(n.SubLists) > 0 {
		v.add("sublists", len(n.SubLists))
	}
}

func (v *attrVisitor) VisitTaskListMarker(n *mdast.TaskListMarker) {
	v.add("checked", n.Checked)
}

func (v *attrVisitor) VisitSoftBreak(*mdast.SoftBreak) {}

func (v *attrVisitor) VisitHardBreak(*mdast.HardBreak) {}

func (v *attrVisitor) VisitCode(*mdast.Code) {}

func (v *attrVisitor) VisitCodeBlock(n *mdast.CodeBlock) {
	v.add("fenced", n.Fenced)
	switch {
	case n.Tag != "":
		v.addQuoted("tag", n.Tag)
	case v.detect:
		if lang, guessed := langdetect.ForCodeBlock(n); guessed && lang != langdetect.Unknown {
			v.add("lang", lang+"?")
		}
	}
}

func (v *attrVisitor) VisitHorizontalRule(*mdast.HorizontalRule) {}

func (v *attrVisitor) VisitTable(n *mdast.Table) {
	aligns := make([]string, len(n.ColumnAlignment))
	for i, a := range n.ColumnAlignment {
		aligns[i] = a.String()
	}
	v.add("columns", len(n.ColumnAlignment))
	if len(aligns) > 0 {
		v.add("align", strings.Join(aligns, ","))
	}
}

func (v *attrVisitor) VisitTableHead(n *mdast.TableHead) { v.add("cells", len(n.Cells)) }

func (v *attrVisitor) VisitTableRow(n *mdast.TableRow) { v.add("cells", len(n.Cells)) }

func (v *attrVisitor) VisitTableCell(*mdast.TableCell) {}
