package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/domain/flow"
)

// ImportFlowHandler handles ImportFlowCommand
type ImportFlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewImportFlowHandler creates a new handler instance
func NewImportFlowHandler(flows *services.FlowService, logger *zap.Logger) *ImportFlowHandler {
	return &ImportFlowHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *ImportFlowHandler) Handle(ctx context.Context, cmd commands.ImportFlowCommand) (flow.Graph, error) {
	graph, err := h.flows.Import(ctx, cmd.Document)
	if err != nil {
		h.logger.Warn("flow import rejected", zap.Error(err))
		return flow.Graph{}, err
	}
	return graph, nil
}
