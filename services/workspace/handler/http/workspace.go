package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/workspace"
)

// WorkspaceHandler handles HTTP requests for workspace membership
type WorkspaceHandler struct {
	workspaceUC workspace.WorkspaceUC
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceUC workspace.WorkspaceUC) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceUC: workspaceUC,
	}
}

// InviteMembers handles POST /workspace_members
func (h *WorkspaceHandler) InviteMembers(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.InviteMembersRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	// members are not dived; the usecase validates each row
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}

	summary, err := h.workspaceUC.InviteMembers(c.Request().Context(), actor, req.CompanyID, req.Members)
	if err != nil {
		return h.respondError(c, err)
	}

	if len(summary.Errors) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, models.InviteMembersResponse{
			Success:      false,
			InvitedCount: summary.InvitedCount,
			UpdatedCount: summary.UpdatedCount,
			Errors:       summary.Errors,
		})
	}
	return c.JSON(http.StatusCreated, models.InviteMembersResponse{
		Success:        true,
		InvitedCount:   summary.InvitedCount,
		UpdatedCount:   summary.UpdatedCount,
		TotalProcessed: summary.TotalProcessed,
	})
}

func actorFromContext(c echo.Context) (models.Actor, bool) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return models.Actor{}, false
	}
	email, _ := c.Get("email").(string)
	return models.Actor{UserID: userID, Email: email}, true
}

func (h *WorkspaceHandler) respondError(c echo.Context, err error) error {
	var (
		authErr *models.AuthorizationError
		verr    *models.ValidationError
	)
	switch {
	case errors.As(err, &authErr):
		return utils.ForbiddenResponse(c, "You are not allowed to manage these roles",
			map[string]interface{}{"disallowed_roles": authErr.DisallowedRoles})
	case errors.As(err, &verr):
		return utils.BadRequestResponse(c, verr.Error())
	case errors.Is(err, models.ErrCompanyNotFound):
		return utils.NotFoundResponse(c, "Company not found")
	}

	logger.ErrorCtx(c.Request().Context(), "Failed to invite members", logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to invite members")
}
