package flattree

// NodeMut is a builder cursor for a tree. It points at a node under which
// clients may push children.
//
// Trees have to be built depth-first: a cursor is valid for pushing as long
// as its node is the last node of the tree or an ancestor of it. Pushing
// under a cursor whose subtree has been left already breaks the pre-order
// invariant. A cursor is meant to be short-lived, like this:
//
//	tree := flattree.New("Users")
//	root := tree.RootMut()
//	jhon := root.Push("jhon_doe")
//	jhon.Push("file1.rs")
//	jhon.Push("file2.rs")
//	root.Push("jane_doe").Push("cat.jpg")
//	// do not push to jhon from here on
//
// Only one goroutine may build a tree at a time.
type NodeMut[T any] struct {
	id   NodeID
	tree *Tree[T]
}

// ID returns the id of the node the cursor points at.
func (b NodeMut[T]) ID() NodeID {
	return b.id
}

// Level returns the level of the node the cursor points at.
func (b NodeMut[T]) Level() int {
	return b.tree.levels[b.id]
}

// Node returns a read-only view of the node the cursor points at.
func (b NodeMut[T]) Node() Node[T] {
	return Node[T]{ID: b.id, tree: b.tree}
}

// Push appends a new child with the given value under the cursor's node and
// returns a cursor for the new child. The child's level is one greater than
// the level of its parent.
//
// Push does not verify that the cursor is still open, see IsOpen. Builds with
// tag 'flattree_debug' will panic instead.
func (b NodeMut[T]) Push(value T) NodeMut[T] {
	if debugChecks {
		assert(b.IsOpen(), "flattree: push under closed node "+b.id.String())
	}
	level := b.tree.levels[b.id] + 1
	id := b.tree.Append(value, level, b.id)
	return NodeMut[T]{id: id, tree: b.tree}
}

// IsOpen reports whether pushing under the cursor keeps the tree in
// pre-order, i.e. whether the cursor's node is the last node of the tree or
// one of its ancestors. This takes at most level(last node) steps.
func (b NodeMut[T]) IsOpen() bool {
	return b.tree.isTailOrAncestor(b.id, NodeID(b.tree.Len()-1))
}
