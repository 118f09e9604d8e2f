// Package events defines the domain events emitted by flow editing.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the flow engine emits.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent carries the fields shared by all events.
type BaseEvent struct {
	ID        string    `json:"event_id"`
	Type      string    `json:"event_type"`
	Timestamp time.Time `json:"occurred_at"`
}

func newBase(eventType string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// FlowSaved is emitted after the canonical tree is persisted.
type FlowSaved struct {
	BaseEvent
	MenuCount int `json:"menu_count"`
}

// NewFlowSaved creates a FlowSaved event.
func NewFlowSaved(menuCount int) FlowSaved {
	return FlowSaved{BaseEvent: newBase("flow.saved"), MenuCount: menuCount}
}

// FlowImported is emitted when an uploaded document replaces the session.
type FlowImported struct {
	BaseEvent
	MenuCount int `json:"menu_count"`
}

// NewFlowImported creates a FlowImported event.
func NewFlowImported(menuCount int) FlowImported {
	return FlowImported{BaseEvent: newBase("flow.imported"), MenuCount: menuCount}
}

// MenuAdded is emitted when a menu is placed on the canvas.
type MenuAdded struct {
	BaseEvent
	MenuID   string `json:"menu_id"`
	MenuType string `json:"menu_type"`
}

// NewMenuAdded creates a MenuAdded event.
func NewMenuAdded(menuID, menuType string) MenuAdded {
	return MenuAdded{BaseEvent: newBase("menu.added"), MenuID: menuID, MenuType: menuType}
}

// MenuDeleted is emitted when a menu and its references are removed.
type MenuDeleted struct {
	BaseEvent
	MenuID string `json:"menu_id"`
}

// NewMenuDeleted creates a MenuDeleted event.
func NewMenuDeleted(menuID string) MenuDeleted {
	return MenuDeleted{BaseEvent: newBase("menu.deleted"), MenuID: menuID}
}
