// Package goldmark builds mdast trees with the goldmark parser.
package goldmark

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// ErrInvalidUTF8 is returned for content that is not valid UTF-8 text.
// Ranges index the source as a string, so such content has no tree.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Parser turns Markdown source into an mdast tree.
type Parser struct {
	flavor      string
	frontMatter bool
	footnotes   bool
	md          goldmark.Markdown
}

// Option configures a Parser.
type Option func(*Parser)

// WithFrontMatter controls whether a leading YAML block becomes the
// file's YamlHeader. Enabled by default.
func WithFrontMatter(enabled bool) Option {
	return func(p *Parser) {
		p.frontMatter = enabled
	}
}

// WithFootnotes controls footnote support. Enabled by default.
func WithFootnotes(enabled bool) Option {
	return func(p *Parser) {
		p.footnotes = enabled
	}
}

// New creates a parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string, opts ...Option) *Parser {
	p := &Parser{
		flavor:      flavorOrDefault(flavor),
		frontMatter: true,
		footnotes:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.md = newGoldmarkInstance(p.flavor, p.footnotes)
	return p
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse builds the tree for content. Every node in the result has a range
// that is valid for content, and the root spans all of it.
//
// Returns nil and an error if the context is cancelled or content is not
// valid UTF-8 (ErrInvalidUTF8).
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	if offset := invalidUTF8(content); offset >= 0 {
		return nil, fmt.Errorf("%w: bad byte 0x%02x at offset %d", ErrInvalidUTF8, content[offset], offset)
	}

	logger := logging.FromContext(ctx).With(logging.FieldPath, path)
	began := time.Now()

	file := mdast.NewFile(path, string(content))

	var header *mdast.YamlHeader
	if p.frontMatter {
		if h, ok := frontMatter(content); ok {
			header = h
			var probe any
			if err := header.Decode(&probe); err != nil {
				logger.Warn("front matter is not valid YAML", logging.FieldError, err)
			}
		}
	}

	source := maskFrontMatter(content, header)
	pc := parser.NewContext()
	doc := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(source)
	m.collectOpaque(doc)

	refs, missing := m.mapReferences(pc.References())
	for _, label := range missing {
		logger.Debug("link reference definition not located", logging.FieldLabel, label)
	}
	for _, ref := range refs {
		m.hide(ref.Range)
	}

	var defs []*mdast.FootnoteDefinition
	if list := footnoteList(doc); list != nil {
		m.registerFootnotes(list)
		defs, missing = m.mapFootnotes(list)
		for _, label := range missing {
			logger.Debug("footnote definition not located", logging.FieldLabel, label)
		}
		for _, def := range defs {
			m.hide(def.Range)
		}
	}

	root := &mdast.SourceFile{
		Range:      mdast.Range{Start: 0, End: len(content)},
		YamlHeader: header,
		Children:   m.mapBlocks(doc, headerEnd(header)),
	}
	for _, ref := range refs {
		root.Children = m.insert(root.Children, ref)
	}
	for _, def := range defs {
		root.Children = m.insert(root.Children, def)
	}
	file.Root = root

	logger.Debug("parsed",
		logging.FieldFlavor, p.flavor,
		logging.FieldBytes, len(content),
		logging.FieldNodes, mdast.Count(root),
		logging.FieldFrontMatter, header != nil,
		logging.FieldDuration, time.Since(began),
	)

	return file, nil
}

// invalidUTF8 returns the offset of the first byte that does not start a
// valid UTF-8 sequence, or -1.
func invalidUTF8(content []byte) int {
	if utf8.Valid(content) {
		return -1
	}
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func headerEnd(header *mdast.YamlHeader) int {
	if header == nil {
		return 0
	}
	return header.End
}

// footnoteList returns the list the footnote extension appends to the
// document, if any.
func footnoteList(doc ast.Node) *east.FootnoteList {
	for child := doc.LastChild(); child != nil; child = child.PreviousSibling() {
		if list, ok := child.(*east.FootnoteList); ok {
			return list
		}
	}
	return nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string, footnotes bool) goldmark.Markdown {
	var extensions []goldmark.Extender

	switch flavor {
	case FlavorGFM:
		extensions = append(extensions, extension.GFM)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}
	if footnotes {
		extensions = append(extensions, extension.Footnote)
	}

	return goldmark.New(goldmark.WithExtensions(extensions...))
}
