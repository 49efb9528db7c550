package mdast

import (
	"fmt"
	"unicode/utf8"
)

// Range is a half-open byte range [Start, End) in the source text.
//
// Every node kind embeds a Range, which gives it the Ranged methods.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Ranged is implemented by anything tied to a span of the source text.
type Ranged interface {
	// SourceRange returns the byte range of the value.
	SourceRange() Range

	// Text returns the verbatim source text covered by the range.
	// The result shares memory with the context's source.
	Text(ctx *Context) string
}

// SourceRange returns r itself.
func (r Range) SourceRange() Range {
	return r
}

// Text returns the substring of the context's source covered by r.
// It panics with a *RangeError when r is not a valid range of that source.
func (r Range) Text(ctx *Context) string {
	return ctx.Slice(r)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Cover returns the smallest range spanning both r and other.
func (r Range) Cover(other Range) Range {
	return Range{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

// String formats the range as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Slice returns source[r.Start:r.End] after checking that the bounds are
// in range, ordered and on UTF-8 character boundaries.
func (r Range) Slice(source string) string {
	if err := r.check(source); err != nil {
		panic(err)
	}
	return source[r.Start:r.End]
}

func (r Range) check(source string) *RangeError {
	switch {
	case r.Start < 0 || r.End > len(source):
		return &RangeError{Range: r, SourceLen: len(source), Reason: "out of bounds"}
	case r.Start > r.End:
		return &RangeError{Range: r, SourceLen: len(source), Reason: "start after end"}
	case !isCharBoundary(source, r.Start) || !isCharBoundary(source, r.End):
		return &RangeError{Range: r, SourceLen: len(source), Reason: "not on a character boundary"}
	}
	return nil
}

func isCharBoundary(source string, offset int) bool {
	return offset == len(source) || utf8.RuneStart(source[offset])
}

// RangeError reports a range that does not fit the source text it is
// applied to. It is a producer bug and is raised with panic.
type RangeError struct {
	Range     Range
	SourceLen int
	Reason    string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %s for source of %d bytes: %s", e.Range, e.SourceLen, e.Reason)
}

// Context binds ranges back to the complete source text of one run.
type Context struct {
	source string
}

// NewContext creates a Context over source.
func NewContext(source string) *Context {
	return &Context{source: source}
}

// Source returns the complete source text.
func (c *Context) Source() string {
	return c.source
}

// Len returns the length of the source text in bytes.
func (c *Context) Len() int {
	return len(c.source)
}

// Slice returns the source text covered by r.
func (c *Context) Slice(r Range) string {
	return r.Slice(c.source)
}
