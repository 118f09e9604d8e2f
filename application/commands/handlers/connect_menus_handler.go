package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/domain/flow"
)

// ConnectMenusHandler handles ConnectMenusCommand
type ConnectMenusHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewConnectMenusHandler creates a new handler instance
func NewConnectMenusHandler(flows *services.FlowService, logger *zap.Logger) *ConnectMenusHandler {
	return &ConnectMenusHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *ConnectMenusHandler) Handle(ctx context.Context, cmd commands.ConnectMenusCommand) (flow.Edge, error) {
	edge, err := h.flows.Connect(ctx, cmd.SourceID, cmd.TargetID, cmd.Label)
	if err != nil {
		return flow.Edge{}, err
	}
	h.logger.Info("menus connected",
		zap.String("source", cmd.SourceID),
		zap.String("target", cmd.TargetID),
	)
	return edge, nil
}
