package mdast

import "iter"

// WalkFunc is called for each node of a walk. A non-nil error ends the
// walk and is returned from it.
type WalkFunc func(n Node) error

// All yields root and every node below it in pre-order, which is source
// order for a valid tree.
func All(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(root, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, child := range n.ChildNodes() {
		if !preorder(child, yield) {
			return false
		}
	}
	return true
}

// Walk calls fn for every node under root in pre-order.
func Walk(root Node, fn WalkFunc) error {
	for n := range All(root) {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithContext calls enter before and leave after the children of each
// node. Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}
	for _, child := range root.ChildNodes() {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}
	if leave == nil {
		return nil
	}
	return leave(root)
}

// WalkBlocks calls fn for block-level nodes only.
func WalkBlocks(root Node, fn WalkFunc) error {
	return walkWhere(root, Kind.IsBlock, fn)
}

// WalkInlines calls fn for inline-level nodes only.
func WalkInlines(root Node, fn WalkFunc) error {
	return walkWhere(root, Kind.IsInline, fn)
}

func walkWhere(root Node, keep func(Kind) bool, fn WalkFunc) error {
	for n := range All(root) {
		if !keep(n.Kind()) {
			continue
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns the nodes under root that satisfy match, in pre-order.
func FindAll(root Node, match func(n Node) bool) []Node {
	var found []Node
	for n := range All(root) {
		if match(n) {
			found = append(found, n)
		}
	}
	return found
}

// FindFirst returns the first node in pre-order that satisfies match, or
// nil.
func FindFirst(root Node, match func(n Node) bool) Node {
	for n := range All(root) {
		if match(n) {
			return n
		}
	}
	return nil
}

// FindByKind returns every node of the given kind.
func FindByKind(root Node, kind Kind) []Node {
	return FindAll(root, func(n Node) bool { return n.Kind() == kind })
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root Node) int {
	count := 0
	for range All(root) {
		count++
	}
	return count
}
