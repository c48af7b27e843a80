package flattree

import (
	"fmt"
	"iter"
	"slices"
)

// NodeID identifies a node by its position in the flat slices of a tree.
// The root always has NodeID 0.
//
// A NodeID is not bound to the tree it came from. Using it with another tree
// is not an error, but will address whatever node lives at that position.
type NodeID int

// RootID is the NodeID of the root node of every tree.
const RootID NodeID = 0

func (id NodeID) String() string {
	return fmt.Sprintf("NodeID(%d)", int(id))
}

// Tree is a slice-backed, flattened tree.
//
// A tree always contains at least a root node. Nodes are stored in depth-first
// pre-order, which is the order in which clients have to add them.
//
// The zero value is not a valid tree; use New or WithCapacity.
type Tree[T any] struct {
	values  []T
	levels  []int
	parents []NodeID
}

// New creates a tree with a single root node carrying value root.
func New[T any](root T) *Tree[T] {
	return WithCapacity(root, 1)
}

// WithCapacity creates a tree with a single root node and reserves room for
// capacity nodes in the internal slices. This does not change semantics, but
// avoids re-allocation when the size of the tree is known in advance.
func WithCapacity[T any](root T, capacity int) *Tree[T] {
	if capacity < 1 {
		capacity = 1
	}
	t := &Tree[T]{
		values:  make([]T, 0, capacity),
		levels:  make([]int, 0, capacity),
		parents: make([]NodeID, 0, capacity),
	}
	t.Append(root, 0, RootID)
	return t
}

// Append adds a node at the end of the tree and returns its NodeID.
//
// Append does not check its arguments. It assumes clients push in pre-order,
// i.e. that parent is either the last node of the tree or one of its
// ancestors, and that level is the parent's level plus one. Violating this
// will silently corrupt every traversal. Prefer NodeMut.Push, which computes
// level and parent.
func (t *Tree[T]) Append(value T, level int, parent NodeID) NodeID {
	t.values = append(t.values, value)
	t.levels = append(t.levels, level)
	t.parents = append(t.parents, parent)
	return NodeID(len(t.values) - 1)
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// IsEmpty reports whether the tree has no nodes. This is only true for nil
// or zero-valued trees, as a constructed tree always has a root.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Tree[T]) contains(id NodeID) bool {
	return id >= 0 && int(id) < t.Len()
}

// Get returns the value of the node with the given id. If id is out of range,
// Get returns the zero value and false.
func (t *Tree[T]) Get(id NodeID) (T, bool) {
	if !t.contains(id) {
		var zero T
		return zero, false
	}
	return t.values[id], true
}

// Node returns a read-only view of the node with the given id.
// If id is out of range, ok is false.
func (t *Tree[T]) Node(id NodeID) (node Node[T], ok bool) {
	if !t.contains(id) {
		return Node[T]{}, false
	}
	return Node[T]{ID: id, tree: t}, true
}

// Root returns a view of the root node.
func (t *Tree[T]) Root() Node[T] {
	return Node[T]{ID: RootID, tree: t}
}

// NodeMut returns a builder cursor positioned at node id.
// If id is out of range, ok is false.
func (t *Tree[T]) NodeMut(id NodeID) (cursor NodeMut[T], ok bool) {
	if !t.contains(id) {
		return NodeMut[T]{}, false
	}
	return NodeMut[T]{id: id, tree: t}, true
}

// RootMut returns a builder cursor positioned at the root node.
func (t *Tree[T]) RootMut() NodeMut[T] {
	return NodeMut[T]{id: RootID, tree: t}
}

// Values is a read-only view of the node values, in pre-order.
// Clients must not modify the returned slice.
func (t *Tree[T]) Values() []T {
	return t.values
}

// Levels is a read-only view of the node levels, in pre-order.
// Clients must not modify the returned slice.
func (t *Tree[T]) Levels() []int {
	return t.levels
}

// Parents is a read-only view of the parent ids, in pre-order.
// The root is its own parent.
// Clients must not modify the returned slice.
func (t *Tree[T]) Parents() []NodeID {
	return t.parents
}

// Clone returns a deep copy of the tree's slices. Values themselves are
// copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		values:  slices.Clone(t.values),
		levels:  slices.Clone(t.levels),
		parents: slices.Clone(t.parents),
	}
}

// Iter returns an iterator over all nodes in pre-order.
func (t *Tree[T]) Iter() *TreeIter[T] {
	return &TreeIter[T]{tree: t}
}

// All returns an iterator over all nodes in pre-order, which is the order
// they have been added in.
func (t *Tree[T]) All() iter.Seq[Node[T]] {
	return rangeOf(t.Iter())
}

// Equal reports whether two trees consist of the same (value, level, parent)
// triples in the same order.
func Equal[T comparable](a, b *Tree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[T, U any](a *Tree[T], b *Tree[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	return slices.Equal(a.levels, b.levels) &&
		slices.Equal(a.parents, b.parents) &&
		slices.EqualFunc(a.values, b.values, eq)
}

// Check validates the pre-order invariant of the tree: the root is level 0
// and its own parent, every other node's parent precedes it, has a level one
// less than the node, and is either the previous node or one of its ancestors.
//
// Check is not used by any tree operation. It is meant for tests and for
// clients which build trees with Append.
func (t *Tree[T]) Check() error {
	if t.IsEmpty() {
		return fmt.Errorf("%w: tree has no root", ErrIllegalArguments)
	}
	if len(t.levels) != len(t.values) || len(t.parents) != len(t.values) {
		return fmt.Errorf("%w: slice lengths differ (%d/%d/%d)", ErrNotPreOrder,
			len(t.values), len(t.levels), len(t.parents))
	}
	if t.levels[0] != 0 || t.parents[0] != RootID {
		return fmt.Errorf("%w: malformed root (level=%d, parent=%d)", ErrNotPreOrder,
			t.levels[0], t.parents[0])
	}
	for i := 1; i < len(t.values); i++ {
		p := t.parents[i]
		if p < 0 || int(p) >= i {
			err := fmt.Errorf("%w: parent %d of node %d does not precede it", ErrNotPreOrder, p, i)
			tracer().Debugf("check: %v", err)
			return err
		}
		if t.levels[i] != t.levels[p]+1 {
			err := fmt.Errorf("%w: node %d has level %d, parent %d has level %d",
				ErrNotPreOrder, i, t.levels[i], p, t.levels[p])
			tracer().Debugf("check: %v", err)
			return err
		}
		// the parent must be open, i.e. the previous node or one of its ancestors
		if !t.isTailOrAncestor(p, NodeID(i-1)) {
			err := fmt.Errorf("%w: node %d attached to closed subtree of node %d", ErrNotPreOrder, i, p)
			tracer().Debugf("check: %v", err)
			return err
		}
	}
	return nil
}

// isTailOrAncestor reports whether p is tail itself or an ancestor of tail.
// It walks up from tail, which takes at most level(tail) steps.
func (t *Tree[T]) isTailOrAncestor(p, tail NodeID) bool {
	for tail > p {
		up := t.parents[tail]
		if up >= tail { // corrupt parent link, would loop forever
			return false
		}
		tail = up
	}
	return tail == p
}
