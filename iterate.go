package flattree

import "iter"

// The iterators in this file read the slices of a tree directly. None of them
// allocates per step or holds state other than a position. Once an iterator
// is exhausted, it stays exhausted; to start over, create a new one.

type nodeIterator[T any] interface {
	Next() (Node[T], bool)
}

func rangeOf[T any](it nodeIterator[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for node, ok := it.Next(); ok; node, ok = it.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// TreeIter iterates over all nodes of a tree in pre-order.
type TreeIter[T any] struct {
	pos  int
	tree *Tree[T]
}

// Next returns the next node, or false if all nodes have been visited.
func (it *TreeIter[T]) Next() (Node[T], bool) {
	if it.pos >= it.tree.Len() {
		return Node[T]{}, false
	}
	node := Node[T]{ID: NodeID(it.pos), tree: it.tree}
	it.pos++
	return node, true
}

// Len returns the number of nodes not yet visited.
func (it *TreeIter[T]) Len() int {
	return max(it.tree.Len()-it.pos, 0)
}

// AncestorIter walks from a node up to the root.
type AncestorIter[T any] struct {
	next NodeID
	done bool
	tree *Tree[T]
}

// Next returns the next ancestor. The root is the last node returned.
func (it *AncestorIter[T]) Next() (Node[T], bool) {
	if it.done {
		return Node[T]{}, false
	}
	node := Node[T]{ID: it.next, tree: it.tree}
	if it.next == RootID {
		it.done = true
	} else {
		it.next = it.tree.parents[it.next]
	}
	return node, true
}

// DescendantIter scans the subtree of a node.
type DescendantIter[T any] struct {
	pos   int
	level int
	done  bool
	tree  *Tree[T]
}

// Next returns the next node of the subtree, in pre-order.
func (it *DescendantIter[T]) Next() (Node[T], bool) {
	if it.done {
		return Node[T]{}, false
	}
	if it.pos >= len(it.tree.levels) || it.tree.levels[it.pos] <= it.level {
		it.done = true
		return Node[T]{}, false
	}
	node := Node[T]{ID: NodeID(it.pos), tree: it.tree}
	it.pos++
	return node, true
}

// ChildIter scans the direct children of a node.
type ChildIter[T any] struct {
	desc DescendantIter[T]
}

// Next returns the next direct child.
func (it *ChildIter[T]) Next() (Node[T], bool) {
	for {
		node, ok := it.desc.Next()
		if !ok || it.desc.tree.levels[node.ID] == it.desc.level+1 {
			return node, ok
		}
	}
}

// SiblingIter scans a tree for nodes on a given level.
type SiblingIter[T any] struct {
	pos   int
	level int
	self  NodeID
	tree  *Tree[T]
}

// Next returns the next node with the same level, skipping the node the
// iterator has been created for.
func (it *SiblingIter[T]) Next() (Node[T], bool) {
	levels := it.tree.levels
	for it.pos < len(levels) {
		i := it.pos
		it.pos++
		if levels[i] == it.level && NodeID(i) != it.self {
			return Node[T]{ID: NodeID(i), tree: it.tree}, true
		}
	}
	return Node[T]{}, false
}
