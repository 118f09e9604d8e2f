package commands

import (
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// DeleteMenuCommand removes a menu from the canvas, dropping its edges and
// scrubbing references from the surviving menus.
type DeleteMenuCommand struct {
	MenuID string `json:"menu_id" validate:"required"`
}

// Validate validates the command
func (cmd DeleteMenuCommand) Validate() error {
	if cmd.MenuID == "" {
		return apperrors.NewValidationError("menu_id is required")
	}
	return nil
}
