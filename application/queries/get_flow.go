// Package queries defines the read-only operations of the flow editor.
package queries

import (
	"github.com/NicollasRezende/flow-management-app/domain/flow"
)

// GetFlowQuery asks for the current canvas state.
type GetFlowQuery struct {
	// Reload discards unsaved edits and re-reads the persisted document.
	Reload bool `json:"reload,omitempty"`
}

// Validate validates the query
func (q GetFlowQuery) Validate() error {
	return nil
}

// GetFlowResult is the canvas state plus the unsaved-edits flag.
type GetFlowResult struct {
	Graph flow.Graph `json:"graph"`
	Dirty bool       `json:"dirty"`
}
