package flow

import (
	"sort"
	"strings"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// Canvas grid used when a menu has no stored position. Menus are laid out
// left to right, wrapping to a new row every colsPerRow entries.
const (
	colWidth   = 300
	rowHeight  = 250
	colsPerRow = 5
	gridOffset = 50
)

// LegacyBackRowID is the sentinel row id older documents used for list
// navigation. A row carrying it navigates to the menu named by its lowercased
// title when the row has no explicit target of its own.
const LegacyBackRowID = "VOLTAR"

// EdgeID derives the stable identifier of a projected edge.
func EdgeID(source, target string) string {
	return source + "-to-" + target
}

// GridPosition returns the canvas position for the menu at the given ordinal.
func GridPosition(ordinal int) Position {
	return Position{
		X: float64((ordinal%colsPerRow)*colWidth + gridOffset),
		Y: float64((ordinal/colsPerRow)*rowHeight + gridOffset),
	}
}

// Project renders a tree as a graph. Node order is deterministic: the initial
// menu first, every other menu in lexical id order. One edge is emitted per
// navigation reference whose target actually exists; references to missing
// menus are silently skipped so a dangling tree still projects cleanly.
func Project(t menu.Tree) Graph {
	order := menuOrder(t)

	g := Graph{
		Nodes: make([]Node, 0, len(order)),
		Edges: []Edge{},
	}
	seen := make(map[string]bool)

	for i, id := range order {
		m := t.Menus[id]
		node := Node{
			ID:       id,
			Position: GridPosition(i),
			Data: NodeData{
				Title:        m.Title,
				Content:      m.Content,
				MenuType:     m.Options.MenuType,
				Options:      m.Options.Clone(),
				ExtraActions: append([]menu.Action(nil), m.ExtraActions...),
			},
		}
		if m.Form != nil {
			node.Data.FormType = m.Form.Type
		}
		g.Nodes = append(g.Nodes, node)

		for _, target := range edgeTargets(m) {
			if !t.HasMenu(target.menuID) {
				continue
			}
			edgeID := EdgeID(id, target.menuID)
			if seen[edgeID] {
				continue
			}
			seen[edgeID] = true
			g.Edges = append(g.Edges, Edge{
				ID:     edgeID,
				Source: node.ID,
				Target: target.menuID,
				Label:  target.label,
			})
		}
	}
	return g
}

type edgeTarget struct {
	menuID string
	label  string
}

// edgeTargets lists the navigation references of a menu in declaration order.
// Button menus navigate through buttons, list menus through section rows.
func edgeTargets(m menu.Menu) []edgeTarget {
	var targets []edgeTarget
	switch m.Options.MenuType {
	case menu.MenuTypeButton:
		for _, b := range m.Options.Buttons {
			if b.NextMenu == "" {
				continue
			}
			targets = append(targets, edgeTarget{menuID: b.NextMenu, label: b.Title})
		}
	case menu.MenuTypeList:
		for _, s := range m.Options.Sections {
			for _, r := range s.Rows {
				target := r.NextMenu
				if target == "" && r.ID == LegacyBackRowID {
					target = strings.ToLower(r.Title)
				}
				if target == "" {
					continue
				}
				targets = append(targets, edgeTarget{menuID: target, label: r.Title})
			}
		}
	}
	return targets
}

func menuOrder(t menu.Tree) []string {
	rest := make([]string, 0, len(t.Menus))
	for id := range t.Menus {
		if id == menu.InitialMenuID {
			continue
		}
		rest = append(rest, id)
	}
	sort.Strings(rest)

	order := make([]string, 0, len(t.Menus))
	if t.HasMenu(menu.InitialMenuID) {
		order = append(order, menu.InitialMenuID)
	}
	return append(order, rest...)
}
