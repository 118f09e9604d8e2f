// Package handlers wires queries to the flow service.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/queries"
	"github.com/NicollasRezende/flow-management-app/application/services"
)

// GetFlowHandler handles GetFlowQuery
type GetFlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewGetFlowHandler creates a new handler instance
func NewGetFlowHandler(flows *services.FlowService, logger *zap.Logger) *GetFlowHandler {
	return &GetFlowHandler{flows: flows, logger: logger}
}

// Handle executes the query
func (h *GetFlowHandler) Handle(ctx context.Context, q queries.GetFlowQuery) (queries.GetFlowResult, error) {
	if q.Reload {
		graph, err := h.flows.Load(ctx)
		if err != nil {
			return queries.GetFlowResult{}, err
		}
		return queries.GetFlowResult{Graph: graph, Dirty: h.flows.Dirty()}, nil
	}
	return queries.GetFlowResult{
		Graph: h.flows.Graph(),
		Dirty: h.flows.Dirty(),
	}, nil
}
