package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/services"
)

// SaveFlowHandler handles SaveFlowCommand
type SaveFlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewSaveFlowHandler creates a new handler instance
func NewSaveFlowHandler(flows *services.FlowService, logger *zap.Logger) *SaveFlowHandler {
	return &SaveFlowHandler{flows: flows, logger: logger}
}

// Handle executes the command
func (h *SaveFlowHandler) Handle(ctx context.Context, _ commands.SaveFlowCommand) error {
	return h.flows.Save(ctx)
}
