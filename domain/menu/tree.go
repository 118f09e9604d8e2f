// Package menu defines the canonical chatbot menu tree: the persisted JSON
// document that the graph editor projects from and reconciles back into.
package menu

// InitialMenuID is the entry point of every flow. The menu carrying this id
// can never be deleted.
const InitialMenuID = "initial"

// MenuType discriminates which half of Options is authoritative for a menu.
type MenuType string

const (
	MenuTypeButton MenuType = "button"
	MenuTypeList   MenuType = "list"
)

// Valid reports whether the menu type is one of the known variants.
func (t MenuType) Valid() bool {
	return t == MenuTypeButton || t == MenuTypeList
}

// Tree is the canonical persisted document. Greetings are opaque template
// strings; Menus maps stable menu ids to their definitions.
type Tree struct {
	Greetings map[string]string `json:"greetings,omitempty"`
	Menus     map[string]Menu   `json:"menus"`
}

// Menu is one screen in the chat flow.
type Menu struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Options      Options  `json:"options"`
	Form         *Form    `json:"form,omitempty"`
	ExtraActions []Action `json:"extra_actions,omitempty"`
}

// Options holds the navigation choices of a menu. MenuType decides whether
// Buttons or Sections is authoritative; the other side is irrelevant and may
// be empty.
type Options struct {
	MenuType   MenuType  `json:"menu_type"`
	Buttons    []Button  `json:"buttons,omitempty"`
	Header     string    `json:"header,omitempty"`
	Footer     string    `json:"footer,omitempty"`
	ButtonText string    `json:"button_text,omitempty"`
	Sections   []Section `json:"sections,omitempty"`
}

// Button is a single choice in a button menu. NextMenu is a soft reference:
// it may name a menu that does not exist, and an empty value means the button
// performs no navigation.
type Button struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	NextMenu string `json:"next_menu,omitempty"`
	Action   string `json:"action,omitempty"`
}

// Section groups rows inside a list menu.
type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Row is a single choice in a list menu. NextMenu mirrors Button.NextMenu;
// older documents navigated through a sentinel row id instead (see
// flow.LegacyBackRowID) and are still understood on projection.
type Row struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	NextMenu string `json:"next_menu,omitempty"`
}

// FormType identifies how a menu collects user input.
type FormType string

const (
	FormTypeFreeText   FormType = "free_text"
	FormTypeStructured FormType = "structured"
)

// Form describes the input collected at a menu.
type Form struct {
	Type       FormType    `json:"type"`
	SubmitText string      `json:"submit_text,omitempty"`
	Action     string      `json:"action,omitempty"`
	Fields     []FormField `json:"fields,omitempty"`
}

// FormField is a single field of a structured form.
type FormField struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// HasMenu reports whether the tree contains the given menu id.
func (t Tree) HasMenu(id string) bool {
	_, ok := t.Menus[id]
	return ok
}

// Clone returns a deep copy of the tree so callers can hand trees across
// boundaries without sharing mutable slices or maps.
func (t Tree) Clone() Tree {
	out := Tree{}
	if t.Greetings != nil {
		out.Greetings = make(map[string]string, len(t.Greetings))
		for k, v := range t.Greetings {
			out.Greetings[k] = v
		}
	}
	if t.Menus != nil {
		out.Menus = make(map[string]Menu, len(t.Menus))
		for id, m := range t.Menus {
			out.Menus[id] = m.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the menu.
func (m Menu) Clone() Menu {
	out := m
	out.Options = m.Options.Clone()
	if m.Form != nil {
		f := *m.Form
		f.Fields = cloneFields(m.Form.Fields)
		out.Form = &f
	}
	if m.ExtraActions != nil {
		out.ExtraActions = append([]Action(nil), m.ExtraActions...)
	}
	return out
}

// Clone returns a deep copy of the options.
func (o Options) Clone() Options {
	out := o
	if o.Buttons != nil {
		out.Buttons = append([]Button(nil), o.Buttons...)
	}
	if o.Sections != nil {
		out.Sections = make([]Section, len(o.Sections))
		for i, s := range o.Sections {
			sec := s
			if s.Rows != nil {
				sec.Rows = append([]Row(nil), s.Rows...)
			}
			out.Sections[i] = sec
		}
	}
	return out
}

func cloneFields(fields []FormField) []FormField {
	if fields == nil {
		return nil
	}
	out := make([]FormField, len(fields))
	for i, f := range fields {
		field := f
		if f.Options != nil {
			field.Options = append([]string(nil), f.Options...)
		}
		out[i] = field
	}
	return out
}
