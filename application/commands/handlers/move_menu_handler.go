package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
)

// MoveMenuHandler handles MoveMenuCommand
type MoveMenuHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewMoveMenuHandler creates a new handler instance
func NewMoveMenuHandler(flows *services.FlowService, logger *zap.Logger) *MoveMenuHandler {
	return &MoveMenuHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *MoveMenuHandler) Handle(ctx context.Context, cmd commands.MoveMenuCommand) error {
	if err := h.flows.Move(ctx, cmd.MenuID, cmd.X, cmd.Y); err != nil {
		return err
	}
	h.logger.Debug("menu moved",
		zap.String("menu_id", cmd.MenuID),
		zap.Float64("x", cmd.X),
		zap.Float64("y", cmd.Y),
	)
	return nil
}
