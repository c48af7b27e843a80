package flattree

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Box-drawing pieces for tree-art output.
const (
	RootMark   = "."
	BranchMid  = "├── "
	BranchLast = "└── "
	TrunkLine  = "│   "
	TrunkSpace = "    "
)

// RangeBranches iterates over all nodes in pre-order and pairs every node with
// the tree-art prefix which precedes it when printing the tree, e.g.
// "│   └── ". The prefix of the root is RootMark followed by a space.
//
// The prefix string is only valid until the next iteration step.
func (t *Tree[T]) RangeBranches() iter.Seq2[string, Node[T]] {
	return func(yield func(string, Node[T]) bool) {
		if t.IsEmpty() {
			return
		}
		last := t.lastChildren()
		trunk := make([]bool, 0, 16) // trunk[l-1]: is there a line to draw at level l
		var sb strings.Builder
		if !yield(RootMark+" ", t.Root()) {
			return
		}
		for i := 1; i < len(t.values); i++ {
			level := t.levels[i]
			if level < 1 { // only possible if the tree is corrupt
				level = 1
			}
			for len(trunk) < level {
				trunk = append(trunk, false)
			}
			trunk = trunk[:level]
			trunk[level-1] = !last[i]
			sb.Reset()
			for l := 0; l < level-1; l++ {
				if trunk[l] {
					sb.WriteString(TrunkLine)
				} else {
					sb.WriteString(TrunkSpace)
				}
			}
			if last[i] {
				sb.WriteString(BranchLast)
			} else {
				sb.WriteString(BranchMid)
			}
			if !yield(sb.String(), Node[T]{ID: NodeID(i), tree: t}) {
				return
			}
		}
	}
}

// lastChildren flags every node which is the last child of its parent.
// Scanning backwards, the first child seen for a parent is its last one.
func (t *Tree[T]) lastChildren() []bool {
	last := make([]bool, len(t.values))
	seen := make([]bool, len(t.values))
	for i := len(t.values) - 1; i > 0; i-- {
		p := t.parents[i]
		if p < 0 || int(p) >= len(seen) {
			continue
		}
		if !seen[p] {
			seen[p] = true
			last[i] = true
		}
	}
	return last
}

// Print writes the tree in tree-art format to w, one node per line.
// Values are formatted with "%v".
func (t *Tree[T]) Print(w io.Writer) error {
	for prefix, node := range t.RangeBranches() {
		if _, err := fmt.Fprintf(w, "%s%v\n", prefix, node.Value()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[T]) String() string {
	var sb strings.Builder
	if err := t.Print(&sb); err != nil {
		tracer().Errorf("tree print: %s", err.Error())
	}
	return sb.String()
}
