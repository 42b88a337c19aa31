package bst

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/npillmayer/keyed"
)

// WriteDot outputs the shape of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with their keys. A node with a single child gets an
// empty placeholder for the missing one, so that left and right stay
// recognizable.
func (t *Tree) WriteDot(w io.Writer) error {
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")
	if !t.IsEmpty() {
		dotNode(g, t.root)
	}
	_, err := io.WriteString(w, g.String())
	return err
}

func dotNode(g *dot.Graph, n *node) dot.Node {
	id := strconv.FormatInt(n.key(), 10)
	dn := g.Node(id).Label(label(n.elem))
	nodeDotStyles(dn, n.left == nil && n.right == nil)
	if n.left == nil && n.right == nil {
		return dn
	}
	for i, child := range [2]*node{n.left, n.right} {
		if child == nil {
			g.Edge(dn, emptyNode(g, fmt.Sprintf("%s-nil-%d", id, i)))
			continue
		}
		g.Edge(dn, dotNode(g, child))
	}
	return dn
}

func label(e keyed.Element) string {
	return strconv.FormatInt(e.Key(), 10)
}

func emptyNode(g *dot.Graph, id string) dot.Node {
	return g.Node(id).Label("").
		Attr("shape", "circle").
		Attr("fixedsize", "true").
		Attr("width", ".2").
		Attr("color", "gray")
}

func nodeDotStyles(n dot.Node, isleaf bool) {
	n.Attr("style", "filled").Attr("fontname", "Arial").Attr("fontsize", "12")
	if isleaf {
		n.Attr("shape", "box")
	} else {
		n.Attr("shape", "circle").Attr("fillcolor", "#a3d7e4")
	}
}
