package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/commands/bus"
	"github.com/NicollasRezende/flow-management-app/application/queries"
	querybus "github.com/NicollasRezende/flow-management-app/application/queries/bus"
	"github.com/NicollasRezende/flow-management-app/pkg/common"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// MenuHandler serves the menu-level endpoints: add, update, move, delete and
// connect. Mutations respond with the refreshed canvas so clients never need
// a follow-up fetch.
type MenuHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewMenuHandler creates a new handler instance
func NewMenuHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// AddMenu places a new menu on the canvas.
// POST /api/v1/menus
func (h *MenuHandler) AddMenu(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AddMenuCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	h.respondCanvas(w, r, http.StatusCreated)
}

// UpdateMenu edits the attributes of a menu.
// PUT /api/v1/menus/{menuID}
func (h *MenuHandler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UpdateMenuCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}
	cmd.MenuID = chi.URLParam(r, "menuID")

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	h.respondCanvas(w, r, http.StatusOK)
}

// MoveMenu records a new canvas position.
// PUT /api/v1/menus/{menuID}/position
func (h *MenuHandler) MoveMenu(w http.ResponseWriter, r *http.Request) {
	var cmd commands.MoveMenuCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}
	cmd.MenuID = chi.URLParam(r, "menuID")

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"moved": true})
}

// DeleteMenu removes a menu and cascades edges and references.
// DELETE /api/v1/menus/{menuID}
func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteMenuCommand{MenuID: chi.URLParam(r, "menuID")}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	h.respondCanvas(w, r, http.StatusOK)
}

// Connect draws a navigation edge between two menus.
// POST /api/v1/connections
func (h *MenuHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var cmd commands.ConnectMenusCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	h.respondCanvas(w, r, http.StatusCreated)
}

func (h *MenuHandler) respondCanvas(w http.ResponseWriter, r *http.Request, status int) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetFlowQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, status, result)
}
