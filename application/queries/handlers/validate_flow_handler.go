package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/queries"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/domain/menu"
)

// ValidateFlowHandler handles ValidateFlowQuery
type ValidateFlowHandler struct {
	flows  *services.FlowService
	logger *zap.Logger
}

// NewValidateFlowHandler creates a new handler instance
func NewValidateFlowHandler(flows *services.FlowService, logger *zap.Logger) *ValidateFlowHandler {
	return &ValidateFlowHandler{flows: flows, logger: logger}
}

// Handle executes the query
func (h *ValidateFlowHandler) Handle(ctx context.Context, _ queries.ValidateFlowQuery) (queries.ValidateFlowResult, error) {
	issues := h.flows.Validate(ctx)
	if issues == nil {
		issues = []menu.Issue{}
	}
	return queries.ValidateFlowResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	}, nil
}
