package mdast

//go:generate go run ./internal/gennode -input nodes.go -output nodes_gen.go

// Every struct in this file that embeds Range is a node kind. The Kind
// enumeration, the Node methods and the Visitor are generated from the
// declarations below, in declaration order.

// NotImplemented stands in for a construct the producer does not map.
type NotImplemented struct {
	Range
}

// SourceFile is the root of a document.
type SourceFile struct {
	Range
	YamlHeader *YamlHeader
	Children   []Node
}

// Heading is an ATX or setext heading.
type Heading struct {
	Range
	Level    int
	Children []Node
}

type Paragraph struct {
	Range
	Children []Node
}

type BlockQuote struct {
	Range
	Children []Node
}

// Text is a run of literal text. Value holds the text with backslash
// escapes resolved, so it can differ from the raw source.
type Text struct {
	Range
	Value string
}

// TextDecoration is emphasis, strong emphasis or strikethrough.
type TextDecoration struct {
	Range
	Decoration TextDecorationKind
	Children   []Node
}

// Html is raw HTML, either a block or an inline tag.
type Html struct { //nolint:revive // kind names follow the node taxonomy
	Range
	Value string
}

// FootnoteReference is a "[^name]" reference in running text.
type FootnoteReference struct {
	Range
	Name string
}

// FootnoteDefinition is a "[^name]: ..." block.
type FootnoteDefinition struct {
	Range
	Name     string
	Children []Node
}

// InlineLink is "[text](url "title")".
type InlineLink struct {
	Range
	Children []Node
	URL      string
	Title    string
}

// ReferenceLink is "[text][reference]".
type ReferenceLink struct {
	Range
	Children  []Node
	Reference string
}

// ShortcutLink is "[text]" or "[text][]".
type ShortcutLink struct {
	Range
	Children []Node
}

// AutoLink is "<https://example.com>" or a bare linkified URL.
type AutoLink struct {
	Range
	Children []Node
}

// LinkReference is a link reference definition: "[name]: link "title"".
type LinkReference struct {
	Range
	Name  string
	Link  string
	Title string
}

// InlineImage is "![alt](url "title")".
type InlineImage struct {
	Range
	Alt   string
	URL   string
	Title string
}

// ReferenceImage is "![alt][reference]", "![alt][]" or "![alt]".
type ReferenceImage struct {
	Range
	Alt       string
	Reference string
}

// List is an ordered or bullet list. StartIndex is only meaningful
// for ordered lists.
type List struct {
	Range
	Ordered    bool
	StartIndex uint64
	Children   []Node
}

// Item is a list item. Nested lists are kept apart from the other
// children in SubLists.
type Item struct {
	Range
	Marker   *TaskListMarker
	Children []Node
	SubLists []Node
}

// TaskListMarker is the "[ ]" or "[x]" at the start of a task item.
type TaskListMarker struct {
	Range
	Checked bool
}

type SoftBreak struct {
	Range
}

type HardBreak struct {
	Range
}

// Code is an inline code span.
type Code struct {
	Range
	Code string
}

// CodeBlock is a fenced or indented code block. Tag is the info
// string of a fenced block, empty when there is none.
type CodeBlock struct {
	Range
	Tag    string
	Fenced bool
	Code   string
}

type HorizontalRule struct {
	Range
}

// Table is a GFM table. ColumnAlignment has one entry per column.
type Table struct {
	Range
	Header          *TableHead
	ColumnAlignment []ColumnAlignment
	Rows            []*TableRow
}

type TableHead struct {
	Range
	Cells []*TableCell
}

type TableRow struct {
	Range
	Cells []*TableCell
}

type TableCell struct {
	Range
	Children []Node
}
