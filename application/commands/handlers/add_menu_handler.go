// Package handlers wires commands to the flow service.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/domain/flow"
	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// AddMenuHandler handles AddMenuCommand
type AddMenuHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewAddMenuHandler creates a new handler instance
func NewAddMenuHandler(flows *services.FlowService, logger *zap.Logger) *AddMenuHandler {
	return &AddMenuHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *AddMenuHandler) Handle(ctx context.Context, cmd commands.AddMenuCommand) (flow.Node, error) {
	node, err := h.flows.AddMenu(ctx, cmd.MenuID, cmd.Title, menu.MenuType(cmd.MenuType))
	if err != nil {
		return flow.Node{}, err
	}
	h.logger.Info("menu added",
		zap.String("menu_id", cmd.MenuID),
		zap.String("menu_type", cmd.MenuType),
	)
	return node, nil
}
