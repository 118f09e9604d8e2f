package queries

import (
	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// ValidateFlowQuery asks for advisory findings about the current flow.
type ValidateFlowQuery struct{}

// Validate validates the query
func (q ValidateFlowQuery) Validate() error {
	return nil
}

// ValidateFlowResult lists the findings. An empty list means the flow is
// internally consistent.
type ValidateFlowResult struct {
	Valid  bool         `json:"valid"`
	Issues []menu.Issue `json:"issues"`
}
