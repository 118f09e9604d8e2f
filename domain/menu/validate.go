package menu

import (
	"encoding/json"
	"fmt"
	"sort"

	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// DecodeTree parses raw JSON into a Tree. The only structural requirement is
// a "menus" key holding an object; anything else the document carries is
// decoded permissively so hand-edited files survive a round trip.
func DecodeTree(data []byte) (Tree, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Tree{}, apperrors.NewValidationError("document is not valid JSON").WithCause(err)
	}
	raw, ok := probe["menus"]
	if !ok {
		return Tree{}, apperrors.NewValidationError("document is missing the 'menus' key")
	}
	var menus map[string]Menu
	if err := json.Unmarshal(raw, &menus); err != nil {
		return Tree{}, apperrors.NewValidationError("'menus' must be an object of menu definitions").WithCause(err)
	}

	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return Tree{}, apperrors.NewValidationError("document does not match the flow schema").WithCause(err)
	}
	if tree.Menus == nil {
		tree.Menus = map[string]Menu{}
	}
	return tree, nil
}

// Issue is a non-fatal finding reported by ValidateTree.
type Issue struct {
	MenuID  string `json:"menu_id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateTree inspects a tree for references to menus that do not exist and
// for unknown menu types. Findings are advisory: a tree with issues still
// loads, projects, and saves.
func ValidateTree(t Tree) []Issue {
	var issues []Issue

	ids := make([]string, 0, len(t.Menus))
	for id := range t.Menus {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if !t.HasMenu(InitialMenuID) {
		issues = append(issues, Issue{
			MenuID:  InitialMenuID,
			Field:   "menus",
			Message: "flow has no initial menu",
		})
	}

	for _, id := range ids {
		m := t.Menus[id]
		if !m.Options.MenuType.Valid() {
			issues = append(issues, Issue{
				MenuID:  id,
				Field:   "options.menu_type",
				Message: fmt.Sprintf("unknown menu type %q", m.Options.MenuType),
			})
		}
		for _, b := range m.Options.Buttons {
			if b.NextMenu != "" && !t.HasMenu(b.NextMenu) {
				issues = append(issues, Issue{
					MenuID:  id,
					Field:   "options.buttons",
					Message: fmt.Sprintf("button %q targets missing menu %q", b.ID, b.NextMenu),
				})
			}
		}
		for _, s := range m.Options.Sections {
			for _, r := range s.Rows {
				if r.NextMenu != "" && !t.HasMenu(r.NextMenu) {
					issues = append(issues, Issue{
						MenuID:  id,
						Field:   "options.sections",
						Message: fmt.Sprintf("row %q targets missing menu %q", r.ID, r.NextMenu),
					})
				}
			}
		}
		for i, a := range m.ExtraActions {
			if err := a.Validate(); err != nil {
				issues = append(issues, Issue{
					MenuID:  id,
					Field:   fmt.Sprintf("extra_actions[%d]", i),
					Message: err.Error(),
				})
			}
		}
	}
	return issues
}
