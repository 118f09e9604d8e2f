package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/queries"
	"github.com/NicollasRezende/flow-management-app/application/services"
)

// ExportFlowHandler handles ExportFlowQuery
type ExportFlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewExportFlowHandler creates a new handler instance
func NewExportFlowHandler(flows *services.FlowService, logger *zap.Logger) *ExportFlowHandler {
	return &ExportFlowHandler{flows: flows, logger: logger}
}

// Handle executes the query
func (h *ExportFlowHandler) Handle(ctx context.Context, _ queries.ExportFlowQuery) (services.ExportArtifact, error) {
	return h.flows.Export(ctx)
}
