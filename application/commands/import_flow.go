package commands

import (
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// ImportFlowCommand replaces the session with an uploaded flow document.
type ImportFlowCommand struct {
	Document []byte `json:"document"`
}

// Validate validates the command
func (cmd ImportFlowCommand) Validate() error {
	if len(cmd.Document) == 0 {
		return apperrors.NewValidationError("document is required")
	}
	return nil
}
