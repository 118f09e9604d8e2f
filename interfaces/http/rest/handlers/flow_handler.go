// Package handlers implements the REST endpoints of the flow editor.
package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/commands/bus"
	"github.com/NicollasRezende/flow-management-app/application/queries"
	querybus "github.com/NicollasRezende/flow-management-app/application/queries/bus"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/pkg/common"
)

const maxImportBytes = 5 << 20 // 5 MiB

// FlowHandler serves the document-level endpoints: fetch, save, import,
// export and validate.
type FlowHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewFlowHandler creates a new handler instance
func NewFlowHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *FlowHandler {
	return &FlowHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// GetFlow returns the current canvas state.
// GET /api/v1/flow
func (h *FlowHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	reload := r.URL.Query().Get("reload") == "true"
	result, err := h.queryBus.Ask(r.Context(), queries.GetFlowQuery{Reload: reload})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// SaveFlow persists a snapshot of the canvas.
// POST /api/v1/flow/save
func (h *FlowHandler) SaveFlow(w http.ResponseWriter, r *http.Request) {
	if err := h.commandBus.Send(r.Context(), commands.SaveFlowCommand{}); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

// ImportFlow replaces the canvas with an uploaded document.
// POST /api/v1/flow/import
func (h *FlowHandler) ImportFlow(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	document, err := io.ReadAll(r.Body)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "failed to read request body")
		return
	}

	cmd := commands.ImportFlowCommand{Document: document}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetFlowQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// ExportFlow streams the reconciled document as a download.
// GET /api/v1/flow/export
func (h *FlowHandler) ExportFlow(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ExportFlowQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	artifact, ok := result.(services.ExportArtifact)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL", "unexpected export result")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Content)
}

// ValidateFlow reports advisory findings about the current flow.
// POST /api/v1/flow/validate
func (h *FlowHandler) ValidateFlow(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ValidateFlowQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
