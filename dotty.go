package flattree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their id, level and value.
// Nodes sharing a level are ranked together.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	if tree.IsEmpty() {
		return ErrIllegalArguments
	}
	var nodelist, edgelist, ranks strings.Builder
	ranked := make(map[int][]NodeID)
	maxLevel := 0
	for node := range tree.All() {
		ID := int(node.ID)
		label := fmt.Sprintf("%d @%d\\n“%s”", ID, node.Level(), escape(fmt.Sprintf("%v", node.Value())))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsLeaf(), node.IsRoot()))
		if !node.IsRoot() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", int(node.Parent()), ID)
		}
		ranked[node.Level()] = append(ranked[node.Level()], node.ID)
		maxLevel = max(maxLevel, node.Level())
	}
	for l := 0; l <= maxLevel; l++ {
		if len(ranked[l]) < 2 {
			continue
		}
		ranks.WriteString("{rank=same;")
		for _, id := range ranked[l] {
			fmt.Fprintf(&ranks, " \"%d\";", int(id))
		}
		ranks.WriteString("}\n")
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		ranks.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("tree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool, isroot bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	if isroot {
		s += ",penwidth=2"
	}
	return s
}
