package flow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

func buttonNode(id string, buttons ...menu.Button) Node {
	return Node{
		ID: id,
		Data: NodeData{
			Title:    id,
			MenuType: menu.MenuTypeButton,
			Options: menu.Options{
				MenuType: menu.MenuTypeButton,
				Buttons:  buttons,
			},
		},
	}
}

func TestReconcile_MenusComeFromNodes(t *testing.T) {
	g := Graph{
		Nodes: []Node{buttonNode("initial"), buttonNode("info")},
		Edges: []Edge{
			// Both endpoints of this edge were deleted from the canvas.
			{ID: "ghost-to-ghost2", Source: "ghost", Target: "ghost2"},
		},
	}

	tree := Reconcile(g, menu.Tree{})
	require.Len(t, tree.Menus, 2)
	assert.True(t, tree.HasMenu("initial"))
	assert.True(t, tree.HasMenu("info"))
	assert.False(t, tree.HasMenu("ghost"))
}

func TestReconcile_FoldsEdgeIntoNewButton(t *testing.T) {
	g := Graph{
		Nodes: []Node{buttonNode("initial"), buttonNode("info")},
		Edges: []Edge{{ID: "e1", Source: "initial", Target: "info", Label: "More info"}},
	}

	tree := Reconcile(g, menu.Tree{})
	buttons := tree.Menus["initial"].Options.Buttons
	require.Len(t, buttons, 1)
	assert.Equal(t, "More info", buttons[0].Title)
	assert.Equal(t, "info", buttons[0].NextMenu)
	assert.True(t, strings.HasPrefix(buttons[0].ID, "btn-"))
}

func TestReconcile_UnlabeledEdgeGetsFallbackTitle(t *testing.T) {
	g := Graph{
		Nodes: []Node{buttonNode("initial"), buttonNode("info")},
		Edges: []Edge{{ID: "e1", Source: "initial", Target: "info"}},
	}

	tree := Reconcile(g, menu.Tree{})
	buttons := tree.Menus["initial"].Options.Buttons
	require.Len(t, buttons, 1)
	assert.Equal(t, "Navigate", buttons[0].Title)
}

func TestReconcile_ExistingButtonTargetNotDuplicated(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			buttonNode("initial", menu.Button{ID: "b1", Title: "Info", NextMenu: "info"}),
			buttonNode("info"),
		},
		Edges: []Edge{{ID: "initial-to-info", Source: "initial", Target: "info", Label: "Info"}},
	}

	tree := Reconcile(g, menu.Tree{})
	assert.Len(t, tree.Menus["initial"].Options.Buttons, 1)
}

func TestReconcile_ListMenusNotFolded(t *testing.T) {
	listNode := Node{
		ID: "catalog",
		Data: NodeData{
			Title:    "Catalog",
			MenuType: menu.MenuTypeList,
			Options: menu.Options{
				MenuType: menu.MenuTypeList,
				Sections: []menu.Section{{
					Rows: []menu.Row{{ID: "r1", Title: "Back", NextMenu: "initial"}},
				}},
			},
		},
	}
	g := Graph{
		Nodes: []Node{buttonNode("initial"), listNode},
		Edges: []Edge{{ID: "catalog-to-initial", Source: "catalog", Target: "initial", Label: "Back"}},
	}

	tree := Reconcile(g, menu.Tree{})
	catalog := tree.Menus["catalog"]
	// Rows already carry the navigation; the edge adds nothing.
	assert.Empty(t, catalog.Options.Buttons)
	require.Len(t, catalog.Options.Sections, 1)
	assert.Len(t, catalog.Options.Sections[0].Rows, 1)
}

func TestReconcile_EdgeWithMissingEndpointIgnored(t *testing.T) {
	g := Graph{
		Nodes: []Node{buttonNode("initial")},
		Edges: []Edge{
			{ID: "e1", Source: "initial", Target: "gone"},
			{ID: "e2", Source: "gone", Target: "initial"},
		},
	}

	tree := Reconcile(g, menu.Tree{})
	assert.Empty(t, tree.Menus["initial"].Options.Buttons)
}

func TestReconcile_GreetingsCarriedFromPrior(t *testing.T) {
	prior := menu.Tree{Greetings: map[string]string{"morning": "Hello"}}
	g := Graph{Nodes: []Node{buttonNode("initial")}}

	tree := Reconcile(g, prior)
	assert.Equal(t, "Hello", tree.Greetings["morning"])
}

func TestReconcile_FormSynthesis(t *testing.T) {
	n := buttonNode("initial")
	n.Data.FormType = menu.FormTypeFreeText
	g := Graph{Nodes: []Node{n}}

	tree := Reconcile(g, menu.Tree{})
	form := tree.Menus["initial"].Form
	require.NotNil(t, form)
	assert.Equal(t, menu.FormTypeFreeText, form.Type)
	assert.Equal(t, "Send", form.SubmitText)
	assert.Equal(t, "submit_form", form.Action)
}

func TestProjectReconcile_RoundTripIsStable(t *testing.T) {
	tree := menu.Tree{
		Greetings: map[string]string{"morning": "Hi"},
		Menus: map[string]menu.Menu{
			"initial": buttonMenu("Main",
				menu.Button{ID: "b1", Title: "Info", NextMenu: "info"},
			),
			"info": buttonMenu("Info",
				menu.Button{ID: "b2", Title: "Back", NextMenu: "initial"},
			),
			"catalog": {
				Title: "Catalog",
				Options: menu.Options{
					MenuType: menu.MenuTypeList,
					Sections: []menu.Section{{
						Title: "Items",
						Rows:  []menu.Row{{ID: "r1", Title: "Back", NextMenu: "initial"}},
					}},
				},
			},
		},
	}

	once := Reconcile(Project(tree), tree)
	twice := Reconcile(Project(once), once)
	assert.Equal(t, once, twice)
}
