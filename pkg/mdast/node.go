package mdast

import "fmt"

// Kind identifies the concrete type of a Node. The constants are
// generated from nodes.go.
type Kind uint8

// String returns the name of the node struct for k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is the closed set of AST node kinds. Only the structs declared in
// nodes.go implement it; a concrete node converts to Node by plain
// assignment, and a Node is taken apart with a type switch or Visit.
type Node interface {
	Ranged

	// Kind returns the tag of the concrete node type.
	Kind() Kind

	// ChildNodes returns the direct children in document order, or nil
	// for leaf kinds. The slice must not be modified.
	ChildNodes() []Node

	node()
}

// IsBlock returns true for block-level kinds.
func (k Kind) IsBlock() bool {
	switch k {
	case KindSourceFile, KindHeading, KindParagraph, KindBlockQuote,
		KindFootnoteDefinition, KindLinkReference, KindList, KindItem,
		KindCodeBlock, KindHorizontalRule, KindTable, KindTableHead,
		KindTableRow, KindTableCell:
		return true
	default:
		return false
	}
}

// IsInline returns true for inline-level kinds.
func (k Kind) IsInline() bool {
	switch k {
	case KindText, KindTextDecoration, KindFootnoteReference, KindInlineLink,
		KindReferenceLink, KindShortcutLink, KindAutoLink, KindInlineImage,
		KindReferenceImage, KindTaskListMarker, KindSoftBreak, KindHardBreak,
		KindCode:
		return true
	default:
		return false
	}
}

// TextDecorationKind distinguishes the TextDecoration variants.
type TextDecorationKind uint8

const (
	Emphasis TextDecorationKind = iota
	Strong
	Strikethrough
)

// String returns a human-readable name for the decoration.
func (k TextDecorationKind) String() string {
	switch k {
	case Emphasis:
		return "emphasis"
	case Strong:
		return "strong"
	case Strikethrough:
		return "strikethrough"
	default:
		return "unknown"
	}
}

// ColumnAlignment is the alignment of a table column.
type ColumnAlignment uint8

const (
	AlignNone ColumnAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns a human-readable name for the alignment.
func (a ColumnAlignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}
