package mdast

import (
	"errors"
	"fmt"
)

// InvariantError describes a node whose range breaks the tree invariants.
type InvariantError struct {
	Kind   Kind
	Range  Range
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Range, e.Reason)
}

// Validate checks the range invariants of the tree rooted at root against
// the source text of ctx:
//   - every range is a valid slice of the source;
//   - every child lies within its parent;
//   - siblings do not overlap and appear in source order;
//   - a SourceFile's YamlHeader lies within it, before its first child.
//
// All violations are returned, joined into one error.
func Validate(root Node, ctx *Context) error {
	if root == nil {
		return nil
	}

	var errs []error
	source := ctx.Source()

	if file, ok := root.(*SourceFile); ok && file.YamlHeader != nil {
		errs = append(errs, validateHeader(file, source)...)
	}

	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(n Node) error {
		r := n.SourceRange()
		if rangeErr := r.check(source); rangeErr != nil {
			errs = append(errs, &InvariantError{Kind: n.Kind(), Range: r, Reason: rangeErr.Reason})
		}

		prev := Range{Start: r.Start, End: r.Start}
		for _, child := range n.ChildNodes() {
			cr := child.SourceRange()
			if !r.ContainsRange(cr) {
				errs = append(errs, &InvariantError{
					Kind:   child.Kind(),
					Range:  cr,
					Reason: fmt.Sprintf("outside parent %s %s", n.Kind(), r),
				})
			}
			if cr.Start < prev.End {
				errs = append(errs, &InvariantError{
					Kind:   child.Kind(),
					Range:  cr,
					Reason: fmt.Sprintf("overlaps or precedes previous sibling %s", prev),
				})
			}
			prev = cr
		}
		return nil
	})

	return errors.Join(errs...)
}

// validateHeader checks front matter, which is ranged but not a child.
func validateHeader(file *SourceFile, source string) []error {
	var errs []error
	r := file.YamlHeader.Range

	if rangeErr := r.check(source); rangeErr != nil {
		errs = append(errs, &InvariantError{Kind: KindSourceFile, Range: r, Reason: "front matter " + rangeErr.Reason})
	}
	if !file.Range.ContainsRange(r) {
		errs = append(errs, &InvariantError{
			Kind:   KindSourceFile,
			Range:  r,
			Reason: fmt.Sprintf("front matter outside file %s", file.Range),
		})
	}
	if len(file.Children) > 0 {
		if first := file.Children[0].SourceRange(); first.Start < r.End {
			errs = append(errs, &InvariantError{
				Kind:   KindSourceFile,
				Range:  r,
				Reason: fmt.Sprintf("front matter overlaps first child %s %s", file.Children[0].Kind(), first),
			})
		}
	}
	return errs
}
