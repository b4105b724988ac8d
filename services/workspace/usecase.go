package workspace

import (
	"context"

	"github.com/piresc/flexwork/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/flexwork/services/workspace WorkspaceUC

// WorkspaceUC is the workspace membership usecase
type WorkspaceUC interface {
	// batch invitation, request path
	InviteMembers(ctx context.Context, actor models.Actor, companyID string, specs []models.MemberSpec) (*models.InviteSummary, error)

	// invitation notification job
	ProcessInvitationBatch(ctx context.Context, batch *models.InvitationBatch) error
}
