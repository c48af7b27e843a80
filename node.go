package flattree

import (
	"fmt"
	"iter"
)

// Node is a read-only view of a node of a tree.
//
// A Node is a small value and cheap to copy. It refers back to its tree for
// every operation, so it reflects nodes appended after it has been created.
type Node[T any] struct {
	ID   NodeID // position of the node within its tree
	tree *Tree[T]
}

// Tree returns the tree the node belongs to.
func (n Node[T]) Tree() *Tree[T] {
	return n.tree
}

// Value returns the payload of the node.
func (n Node[T]) Value() T {
	return n.tree.values[n.ID]
}

// Ref returns a pointer to the payload of the node. The pointer is valid
// until the next node is appended to the tree.
func (n Node[T]) Ref() *T {
	return &n.tree.values[n.ID]
}

// Level is the depth of the node, where the root has level 0.
func (n Node[T]) Level() int {
	return n.tree.levels[n.ID]
}

// Parent returns the id of the node's parent. For the root, this is the root
// itself.
func (n Node[T]) Parent() NodeID {
	return n.tree.parents[n.ID]
}

// IsRoot reports whether n is the root of its tree.
func (n Node[T]) IsRoot() bool {
	return n.ID == RootID
}

// IsLeaf reports whether n has no descendants.
func (n Node[T]) IsLeaf() bool {
	next := int(n.ID) + 1
	return next >= len(n.tree.levels) || n.tree.levels[next] <= n.Level()
}

// SubtreeLen returns the number of descendants of n, not counting n itself.
func (n Node[T]) SubtreeLen() int {
	level := n.Level()
	i := int(n.ID) + 1
	for i < len(n.tree.levels) && n.tree.levels[i] > level {
		i++
	}
	return i - int(n.ID) - 1
}

// Ancestors returns an iterator over the ancestors of n, from its parent up
// to and including the root. n itself is not included. The root has no
// ancestors.
func (n Node[T]) Ancestors() *AncestorIter[T] {
	return &AncestorIter[T]{
		next: n.Parent(),
		done: n.IsRoot(),
		tree: n.tree,
	}
}

// RangeAncestors is a range-over-func version of Ancestors.
func (n Node[T]) RangeAncestors() iter.Seq[Node[T]] {
	return rangeOf(n.Ancestors())
}

// Descendants returns an iterator over the whole subtree below n, in pre-order,
// not including n itself.
//
// Thanks to pre-order, the subtree of n is the contiguous run of nodes after
// n which have a level greater than n's level. No child lists are stored.
func (n Node[T]) Descendants() *DescendantIter[T] {
	return &DescendantIter[T]{
		pos:   int(n.ID) + 1,
		level: n.Level(),
		tree:  n.tree,
	}
}

// RangeDescendants is a range-over-func version of Descendants.
func (n Node[T]) RangeDescendants() iter.Seq[Node[T]] {
	return rangeOf(n.Descendants())
}

// Children returns an iterator over the direct children of n. It scans the
// same range as Descendants and skips nodes more than one level deeper.
func (n Node[T]) Children() *ChildIter[T] {
	return &ChildIter[T]{desc: *n.Descendants()}
}

// RangeChildren is a range-over-func version of Children.
func (n Node[T]) RangeChildren() iter.Seq[Node[T]] {
	return rangeOf(n.Children())
}

// Siblings returns an iterator over all other nodes of the tree which are on
// the same level as n, in pre-order.
//
// Note that this is broader than the usual notion of siblings: nodes are
// matched by level alone, across the whole tree, not by a common parent.
// Two cousins are siblings in this sense.
func (n Node[T]) Siblings() *SiblingIter[T] {
	return &SiblingIter[T]{
		level: n.Level(),
		self:  n.ID,
		tree:  n.tree,
	}
}

// RangeSiblings is a range-over-func version of Siblings.
func (n Node[T]) RangeSiblings() iter.Seq[Node[T]] {
	return rangeOf(n.Siblings())
}

func (n Node[T]) String() string {
	if n.tree == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", n.Value())
}

// GoString renders a node as id:value, for debugging.
func (n Node[T]) GoString() string {
	if n.tree == nil {
		return n.ID.String() + ":<nil>"
	}
	return fmt.Sprintf("%s:%#v", n.ID, n.Value())
}
