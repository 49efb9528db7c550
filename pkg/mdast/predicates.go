package mdast

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark/util"

	"github.com/disrupted/dprint-plugin-markdown/pkg/listword"
)

// StartsWithListWord reports whether the first whitespace-delimited word
// of the text is a list marker, such as "-" or "1.". Text like that would
// be read back as a list item if it were printed at the start of a line.
func (t *Text) StartsWithListWord() bool {
	return listword.IsListWord(firstWord(t.Value))
}

// StartsWithListWord is false for every node that is not a *Text.
func StartsWithListWord(n Node) bool {
	if text, ok := n.(*Text); ok {
		return text.StartsWithListWord()
	}
	return false
}

func firstWord(s string) string {
	if end := strings.IndexFunc(s, unicode.IsSpace); end >= 0 {
		return s[:end]
	}
	return s
}

// HasPrecedingSpace reports whether the byte just before the node in
// source is an ASCII space. Only ' ' counts, not tabs or newlines.
// A range that does not fit source panics with *RangeError.
func HasPrecedingSpace(n Ranged, source string) bool {
	r := n.SourceRange()
	if err := r.check(source); err != nil {
		panic(err)
	}
	return r.Start > 0 && source[r.Start-1] == ' '
}

// StartsWithPunctuation reports whether the first character of the
// node's raw source is ASCII punctuation.
func StartsWithPunctuation(n Ranged, source string) bool {
	text := n.SourceRange().Slice(source)
	if text == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return isASCIIPunct(r)
}

// EndsWithPunctuation reports whether the last character of the node's
// raw source is ASCII punctuation.
func EndsWithPunctuation(n Ranged, source string) bool {
	text := n.SourceRange().Slice(source)
	if text == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return isASCIIPunct(r)
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && util.IsPunct(byte(r))
}
