package metrics

import (
	"fmt"
	"strings"

	"github.com/npillmayer/flattree"
)

// Metrics summarizes the shape of a tree.
type Metrics struct {
	Nodes     int   // number of nodes, including the root
	Leaves    int   // number of nodes without children
	Height    int   // level of the deepest node; 0 for a root-only tree
	MaxFanOut int   // maximum number of direct children of any node
	FanOutAt  int   // id of the first node with MaxFanOut children
	Widths    []int // Widths[l] is the number of nodes at level l
}

// Collect computes the metrics of a tree in a single pass.
func Collect[T any](tree *flattree.Tree[T]) Metrics {
	var m Metrics
	if tree.IsEmpty() {
		return m
	}
	levels := tree.Levels()
	parents := tree.Parents()
	fanout := make([]int, len(levels))
	m.Nodes = len(levels)
	for i, l := range levels {
		for len(m.Widths) <= l {
			m.Widths = append(m.Widths, 0)
		}
		m.Widths[l]++
		m.Height = max(m.Height, l)
		if i > 0 {
			fanout[parents[i]]++
		}
		// node i is a leaf if the next node is not deeper
		if i+1 == len(levels) || levels[i+1] <= l {
			m.Leaves++
		}
	}
	for i, n := range fanout {
		if n > m.MaxFanOut {
			m.MaxFanOut, m.FanOutAt = n, i
		}
	}
	tracer().Debugf("metrics: %d nodes, height %d", m.Nodes, m.Height)
	return m
}

// Width returns the maximum number of nodes on any single level.
func (m Metrics) Width() int {
	w := 0
	for _, n := range m.Widths {
		w = max(w, n)
	}
	return w
}

func (m Metrics) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes=%d leaves=%d height=%d max-fan-out=%d@%d", m.Nodes, m.Leaves,
		m.Height, m.MaxFanOut, m.FanOutAt)
	sb.WriteString(" widths=[")
	for l, n := range m.Widths {
		if l > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ---------------------------------------------------------------------------

// Count returns the number of nodes in the subtree of node (including node
// itself) which satisfy pred.
func Count[T any](node flattree.Node[T], pred func(flattree.Node[T]) bool) int {
	n := 0
	if pred(node) {
		n++
	}
	for d := range node.RangeDescendants() {
		if pred(d) {
			n++
		}
	}
	return n
}

// Find returns the ids of all nodes in the subtree of node (including node
// itself) which satisfy pred, in pre-order.
func Find[T any](node flattree.Node[T], pred func(flattree.Node[T]) bool) []flattree.NodeID {
	var ids []flattree.NodeID
	if pred(node) {
		ids = append(ids, node.ID)
	}
	for d := range node.RangeDescendants() {
		if pred(d) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
