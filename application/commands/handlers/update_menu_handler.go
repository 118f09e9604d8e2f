package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/domain/flow"
	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// UpdateMenuHandler handles UpdateMenuCommand
type UpdateMenuHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewUpdateMenuHandler creates a new handler instance
func NewUpdateMenuHandler(flows *services.FlowService, logger *zap.Logger) *UpdateMenuHandler {
	return &UpdateMenuHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *UpdateMenuHandler) Handle(ctx context.Context, cmd commands.UpdateMenuCommand) (flow.Node, error) {
	patch := flow.NodePatch{
		Title:        cmd.Title,
		Content:      cmd.Content,
		Options:      cmd.Options,
		ExtraActions: cmd.ExtraActions,
	}
	if cmd.MenuType != nil {
		t := menu.MenuType(*cmd.MenuType)
		patch.MenuType = &t
	}
	if cmd.FormType != nil {
		f := menu.FormType(*cmd.FormType)
		patch.FormType = &f
	}

	node, err := h.flows.UpdateMenu(ctx, cmd.MenuID, patch)
	if err != nil {
		return flow.Node{}, err
	}
	h.logger.Info("menu updated", zap.String("menu_id", cmd.MenuID))
	return node, nil
}
