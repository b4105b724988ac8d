package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/services/workspace/handler/http"
)

// Handler wires the workspace HTTP handlers to routes
type Handler struct {
	workspaceHandler *http.WorkspaceHandler
}

// NewHandler creates the workspace route handler
func NewHandler(workspaceHandler *http.WorkspaceHandler) *Handler {
	return &Handler{workspaceHandler: workspaceHandler}
}

// RegisterRoutes mounts the authenticated workspace routes; mw must include JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.POST("/workspace_members", h.workspaceHandler.InviteMembers, mw...)
}
