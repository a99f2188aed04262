package mcts

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// DumpDOT walks the tree rooted at root and writes a Graphviz DOT
// rendering to w, labeling every node with its edge action, visit count
// N and Q (wins minus losses). It is read-only and never called from inside a search
// iteration; it exists purely for inspecting a stalled or surprising
// position in tests or ad hoc debugging.
func DumpDOT(root *Node, w io.Writer) error {
	g := gographviz.NewGraph()
	if err := g.SetName("search"); err != nil {
		return errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return errors.WithStack(err)
	}

	id := 0
	if err := addNode(g, root, &id, "root"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, g.String()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func addNode(g *gographviz.Graph, n *Node, id *int, label string) error {
	name := fmt.Sprintf("n%d", *id)
	*id++

	attrs := map[string]string{
		"label": fmt.Sprintf("\"%s\\nn=%d q=%d\"", label, n.N(), n.Q()),
	}
	if err := g.AddNode("search", name, attrs); err != nil {
		return errors.WithStack(err)
	}

	for _, child := range n.Children() {
		childLabel := fmt.Sprintf("%v", child.Action())
		childName := fmt.Sprintf("n%d", *id)
		if err := addNode(g, child, id, childLabel); err != nil {
			return err
		}
		if err := g.AddEdge(name, childName, true, nil); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
