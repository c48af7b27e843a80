/*
Package html bridges between HTML documents and flat trees.

An HTML DOM is a classic pointer tree. FromNode flattens it in document order,
which is pre-order, so descendants and ancestors of elements may be walked
with the iterators of package flattree. RenderList goes the other way and
renders any flat tree as nested HTML lists.

# BSD License

Copyright (c) Norbert Pillmayer

Please refer to the License file for details.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/flattree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'flattree'
func tracer() tracing.Trace {
	return tracing.Select("flattree")
}

// ErrNoDocument is returned if an HTML input produced no nodes.
var ErrNoDocument = errors.New("html: no document")

// FromNode creates a flat tree of the HTML node n and all its descendents.
// Element, text and comment nodes are included, text nodes consisting only of
// white space are skipped.
func FromNode(n *html.Node) *flattree.Tree[*html.Node] {
	if n == nil {
		return nil
	}
	tree := flattree.New(n)
	collectNodes(tree.RootMut(), n)
	return tree
}

func collectNodes(parent flattree.NodeMut[*html.Node], n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if skip(c) {
			continue
		}
		collectNodes(parent.Push(c), c)
	}
}

func skip(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode, html.CommentNode:
		return false
	case html.TextNode:
		return strings.TrimSpace(n.Data) == ""
	}
	return true
}

// FromHTML parses an HTML document and creates a flat tree from it.
// The root of the tree is the document node.
func FromHTML(input io.Reader) (*flattree.Tree[*html.Node], error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoDocument
	}
	tree := FromNode(doc)
	tracer().Debugf("html: flattened document into %d nodes", tree.Len())
	return tree, nil
}

// Label returns a short textual representation of an HTML node, suitable
// for printing a tree: "<tag>" for elements, the trimmed text for text nodes.
func Label(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.TextNode:
		return strings.TrimSpace(n.Data)
	case html.CommentNode:
		return "<!--" + n.Data + "-->"
	}
	return n.Data
}

// RenderList renders a flat tree as nested, unordered HTML lists. Every tree
// node becomes a <li> element containing its label, and every node with
// children gets a nested <ul>.
//
//	<ul><li>Users<ul><li>jhon_doe<ul>…</ul></li>…</ul></li></ul>
func RenderList[T any](tree *flattree.Tree[T], w io.Writer, label func(T) string) error {
	if tree.IsEmpty() || label == nil {
		return flattree.ErrIllegalArguments
	}
	top := newElement(atom.Ul)
	// items[l] is the <li> of the most recent node at level l, i.e. the
	// ancestor at level l of the node being processed.
	items := make([]*html.Node, 0, 16)
	for node := range tree.All() {
		li := newElement(atom.Li)
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label(node.Value())})
		level := node.Level()
		if level == 0 || level > len(items) {
			top.AppendChild(li)
		} else {
			parent := items[level-1]
			if parent.LastChild == nil || parent.LastChild.DataAtom != atom.Ul {
				parent.AppendChild(newElement(atom.Ul))
			}
			parent.LastChild.AppendChild(li)
		}
		items = append(items[:min(level, len(items))], li)
	}
	return html.Render(w, top)
}

func newElement(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
