package commands

import (
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// MoveMenuCommand records a new canvas position for a menu.
type MoveMenuCommand struct {
	MenuID string  `json:"menu_id" validate:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Validate validates the command
func (cmd MoveMenuCommand) Validate() error {
	if cmd.MenuID == "" {
		return apperrors.NewValidationError("menu_id is required")
	}
	return nil
}
