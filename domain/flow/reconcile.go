package flow

import (
	"strings"

	"github.com/google/uuid"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// Reconcile folds the edited graph back into a canonical tree. Menus are
// built strictly from nodes; an edge whose source or target node is gone
// contributes nothing. Greetings are not editable on the canvas, so they are
// carried over from the prior tree untouched.
func Reconcile(g Graph, prior menu.Tree) menu.Tree {
	tree := menu.Tree{
		Menus: make(map[string]menu.Menu, len(g.Nodes)),
	}
	if prior.Greetings != nil {
		tree.Greetings = make(map[string]string, len(prior.Greetings))
		for k, v := range prior.Greetings {
			tree.Greetings[k] = v
		}
	}

	nodeByID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeByID[n.ID] = n
		tree.Menus[n.ID] = menuFromNode(n)
	}

	for _, e := range g.Edges {
		src, ok := nodeByID[e.Source]
		if !ok {
			continue
		}
		if _, ok := nodeByID[e.Target]; !ok {
			continue
		}
		m := tree.Menus[e.Source]
		switch src.Data.MenuType {
		case menu.MenuTypeButton:
			if hasButtonTarget(m.Options.Buttons, e.Target) {
				continue
			}
			m.Options.Buttons = append(m.Options.Buttons, menu.Button{
				ID:       newButtonID(),
				Title:    labelOr(e.Label, "Navigate"),
				NextMenu: e.Target,
			})
			tree.Menus[e.Source] = m
		case menu.MenuTypeList:
			// List rows already name their targets; edges between list
			// menus are a rendering of that state, not new information.
		}
	}
	return tree
}

func menuFromNode(n Node) menu.Menu {
	m := menu.Menu{
		Title:        n.Data.Title,
		Content:      n.Data.Content,
		Options:      n.Data.Options.Clone(),
		ExtraActions: append([]menu.Action(nil), n.Data.ExtraActions...),
	}
	m.Options.MenuType = n.Data.MenuType
	if n.Data.FormType != "" {
		m.Form = &menu.Form{
			Type:       n.Data.FormType,
			SubmitText: "Send",
			Action:     "submit_form",
		}
	}
	return m
}

func hasButtonTarget(buttons []menu.Button, target string) bool {
	for _, b := range buttons {
		if b.NextMenu == target {
			return true
		}
	}
	return false
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// newButtonID mints an id for a button synthesized from an edge. A short
// uuid fragment keeps ids unique without making the document unreadable.
func newButtonID() string {
	return "btn-" + strings.Split(uuid.New().String(), "-")[0]
}
