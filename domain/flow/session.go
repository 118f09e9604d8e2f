package flow

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// Session accumulates canvas edits between loads and saves. All mutation
// happens here, in memory; nothing touches storage until the owning service
// decides to persist a snapshot.
type Session struct {
	mu        sync.Mutex
	greetings map[string]string
	nodes     []Node
	edges     []Edge
	dirty     bool
	rev       uint64
}

// NewSession returns an empty, clean session.
func NewSession() *Session {
	return &Session{greetings: map[string]string{}}
}

// Load replaces the session state with the projection of the given tree and
// clears the dirty flag.
func (s *Session) Load(t menu.Tree) {
	g := Project(t)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.greetings = map[string]string{}
	for k, v := range t.Greetings {
		s.greetings[k] = v
	}
	s.nodes = g.Nodes
	s.edges = g.Edges
	s.dirty = false
}

// Graph returns a copy of the current canvas state.
func (s *Session) Graph() Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Dirty reports whether the session holds edits not yet persisted.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkDirty flags the session as holding unsaved edits.
func (s *Session) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
}

// MarkSavedAt clears the dirty flag, but only if no edit landed after the
// snapshot identified by rev. Edits made while a save was in flight stay
// dirty.
func (s *Session) MarkSavedAt(rev uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rev == rev {
		s.dirty = false
	}
}

// Snapshot reconciles the current canvas into a tree and returns it together
// with the session revision the snapshot was taken at.
func (s *Session) Snapshot() (menu.Tree, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := menu.Tree{Greetings: s.greetings}
	return Reconcile(s.snapshotLocked(), prior), s.rev
}

func (s *Session) touchLocked() {
	s.dirty = true
	s.rev++
}

// AddNode places a new menu on the canvas with type-appropriate starter
// options and a grid position after the existing nodes.
func (s *Session) AddNode(id, title string, menuType menu.MenuType) (Node, error) {
	if id == "" {
		return Node{}, apperrors.NewValidationError("menu id is required")
	}
	if !menuType.Valid() {
		return Node{}, apperrors.NewValidationError("menu type must be 'button' or 'list'")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findNodeLocked(id) >= 0 {
		return Node{}, apperrors.NewConflictError("menu '" + id + "' already exists")
	}

	if title == "" {
		title = titleFromID(id)
	}
	node := Node{
		ID:       id,
		Position: GridPosition(len(s.nodes)),
		Data: NodeData{
			Title:    title,
			Content:  "Content for " + id,
			MenuType: menuType,
			Options:  starterOptions(menuType),
		},
	}
	s.nodes = append(s.nodes, node)
	s.touchLocked()
	return node, nil
}

// NodePatch carries the editable attributes of a node. Nil fields are left
// unchanged.
type NodePatch struct {
	Title        *string
	Content      *string
	MenuType     *menu.MenuType
	Options      *menu.Options
	FormType     *menu.FormType
	ExtraActions *[]menu.Action
}

// UpdateNode applies a patch to an existing node.
func (s *Session) UpdateNode(id string, patch NodePatch) (Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNodeLocked(id)
	if i < 0 {
		return Node{}, apperrors.NewNotFoundError("menu '" + id + "'")
	}

	n := &s.nodes[i]
	if patch.Title != nil {
		n.Data.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Data.Content = *patch.Content
	}
	if patch.MenuType != nil {
		if !patch.MenuType.Valid() {
			return Node{}, apperrors.NewValidationError("menu type must be 'button' or 'list'")
		}
		n.Data.MenuType = *patch.MenuType
	}
	if patch.Options != nil {
		n.Data.Options = patch.Options.Clone()
	}
	if patch.FormType != nil {
		n.Data.FormType = *patch.FormType
	}
	if patch.ExtraActions != nil {
		n.Data.ExtraActions = append([]menu.Action(nil), (*patch.ExtraActions)...)
	}
	s.touchLocked()
	return *n, nil
}

// MoveNode records a new canvas position for a node.
func (s *Session) MoveNode(id string, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNodeLocked(id)
	if i < 0 {
		return apperrors.NewNotFoundError("menu '" + id + "'")
	}
	s.nodes[i].Position = pos
	s.touchLocked()
	return nil
}

// Connect draws an edge between two nodes. Endpoints are not checked against
// the node set: a connection to a menu drawn later is legitimate editor
// state, and reconciliation drops whatever never materializes.
func (s *Session) Connect(source, target, label string) (Edge, error) {
	if source == "" || target == "" {
		return Edge{}, apperrors.NewValidationError("connection requires source and target")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	edge := Edge{
		ID:     "edge-" + uuid.New().String(),
		Source: source,
		Target: target,
		Label:  label,
	}
	s.edges = append(s.edges, edge)
	s.touchLocked()
	return edge, nil
}

// DeleteNode removes a menu from the canvas and cascades: edges touching it
// are dropped, and every surviving node's navigation references to it are
// scrubbed, whether or not an edge was ever drawn for them. The initial menu
// is protected.
func (s *Session) DeleteNode(id string) error {
	if id == menu.InitialMenuID {
		return apperrors.NewProtectedEntityError("the initial menu")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNodeLocked(id)
	if i < 0 {
		return apperrors.NewNotFoundError("menu '" + id + "'")
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)

	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Source == id || e.Target == id {
			continue
		}
		kept = append(kept, e)
	}
	s.edges = kept

	for ni := range s.nodes {
		scrubReferences(&s.nodes[ni].Data.Options, id)
	}
	s.touchLocked()
	return nil
}

// BuildTree reconciles the current canvas state into a canonical tree.
func (s *Session) BuildTree() menu.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := menu.Tree{Greetings: s.greetings}
	return Reconcile(s.snapshotLocked(), prior)
}

func (s *Session) snapshotLocked() Graph {
	return Graph{Nodes: s.nodes, Edges: s.edges}.Clone()
}

func (s *Session) findNodeLocked(id string) int {
	for i, n := range s.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// titleFromID turns a menu id into a presentable default title:
// underscores become spaces and each word is capitalized.
func titleFromID(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// starterOptions gives a freshly added menu a single way back to the start,
// so no menu ever begins as a dead end.
func starterOptions(t menu.MenuType) menu.Options {
	switch t {
	case menu.MenuTypeList:
		return menu.Options{
			MenuType:   t,
			ButtonText: "View options",
			Sections: []menu.Section{
				{
					Title: "Options",
					Rows: []menu.Row{
						{ID: "back", Title: "Back", NextMenu: menu.InitialMenuID},
					},
				},
			},
		}
	default:
		return menu.Options{
			MenuType: t,
			Buttons: []menu.Button{
				{ID: "back", Title: "Back", NextMenu: menu.InitialMenuID},
			},
		}
	}
}

// scrubReferences removes every navigation choice pointing at the deleted
// menu, so the saved document never carries dead buttons or rows.
func scrubReferences(o *menu.Options, deleted string) {
	buttons := o.Buttons[:0]
	for _, b := range o.Buttons {
		if b.NextMenu == deleted {
			continue
		}
		buttons = append(buttons, b)
	}
	o.Buttons = buttons

	for si := range o.Sections {
		rows := o.Sections[si].Rows[:0]
		for _, r := range o.Sections[si].Rows {
			if r.NextMenu == deleted {
				continue
			}
			rows = append(rows, r)
		}
		o.Sections[si].Rows = rows
	}
}
