// Package flow implements the editable graph view of a menu tree: projecting
// a tree into nodes and edges, accumulating edits against that view, and
// reconciling the view back into a canonical tree.
package flow

import (
	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// Position is a node's placement on the editor canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the menu attributes shown and edited on a node.
type NodeData struct {
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	MenuType     menu.MenuType `json:"menu_type"`
	Options      menu.Options  `json:"options"`
	FormType     menu.FormType `json:"form_type,omitempty"`
	ExtraActions []menu.Action `json:"extra_actions,omitempty"`
}

// Node is one menu rendered on the canvas. ID doubles as the menu id.
type Node struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Edge is a navigation link between two nodes. Source and Target are node
// ids; Label is the title of the choice that triggers the navigation.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// Graph is the full editor view: every node plus every derivable edge.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	out := Graph{}
	if g.Nodes != nil {
		out.Nodes = make([]Node, len(g.Nodes))
		for i, n := range g.Nodes {
			node := n
			node.Data.Options = n.Data.Options.Clone()
			if n.Data.ExtraActions != nil {
				node.Data.ExtraActions = append([]menu.Action(nil), n.Data.ExtraActions...)
			}
			out.Nodes[i] = node
		}
	}
	if g.Edges != nil {
		out.Edges = append([]Edge(nil), g.Edges...)
	}
	return out
}
