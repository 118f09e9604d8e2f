package commands

import (
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
	"github.com/NicollasRezende/flow-management-app/pkg/utils"
)

// ConnectMenusCommand draws a navigation edge between two menus.
type ConnectMenusCommand struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
	Label    string `json:"label" validate:"max=200"`
}

// Validate validates the command
func (cmd ConnectMenusCommand) Validate() error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
