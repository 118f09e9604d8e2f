package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
)

// DeleteMenuHandler handles DeleteMenuCommand
type DeleteMenuHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewDeleteMenuHandler creates a new handler instance
func NewDeleteMenuHandler(flows *services.FlowService, logger *zap.Logger) *DeleteMenuHandler {
	return &DeleteMenuHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *DeleteMenuHandler) Handle(ctx context.Context, cmd commands.DeleteMenuCommand) error {
	if err := h.flows.Delete(ctx, cmd.MenuID); err != nil {
		return err
	}
	h.logger.Info("menu deleted", zap.String("menu_id", cmd.MenuID))
	return nil
}
