// Package commands defines the state-changing operations of the flow editor.
package commands

import (
	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
	"github.com/NicollasRezende/flow-management-app/pkg/utils"
)

// AddMenuCommand places a new menu on the canvas.
type AddMenuCommand struct {
	MenuID   string `json:"menu_id" validate:"required,min=1,max=100"`
	Title    string `json:"title" validate:"max=200"`
	MenuType string `json:"menu_type" validate:"required,oneof=button list"`
}

// Validate validates the command
func (cmd AddMenuCommand) Validate() error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if !menu.MenuType(cmd.MenuType).Valid() {
		return apperrors.NewValidationError("menu_type must be 'button' or 'list'")
	}
	return nil
}
