package commands

import (
	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
)

// UpdateMenuCommand edits the attributes of a menu already on the canvas.
// Nil fields are left unchanged.
type UpdateMenuCommand struct {
	MenuID       string         `json:"menu_id" validate:"required"`
	Title        *string        `json:"title,omitempty"`
	Content      *string        `json:"content,omitempty"`
	MenuType     *string        `json:"menu_type,omitempty"`
	Options      *menu.Options  `json:"options,omitempty"`
	FormType     *string        `json:"form_type,omitempty"`
	ExtraActions *[]menu.Action `json:"extra_actions,omitempty"`
}

// Validate validates the command
func (cmd UpdateMenuCommand) Validate() error {
	if cmd.MenuID == "" {
		return apperrors.NewValidationError("menu_id is required")
	}
	if cmd.MenuType != nil && !menu.MenuType(*cmd.MenuType).Valid() {
		return apperrors.NewValidationError("menu_type must be 'button' or 'list'")
	}
	if cmd.ExtraActions != nil {
		for _, a := range *cmd.ExtraActions {
			if err := a.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
