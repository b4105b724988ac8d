package workspace

import (
	"context"

	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/flexwork/services/workspace WorkspaceGW

// WorkspaceGW defines the workspace gateways interface
type WorkspaceGW interface {
	// NATS Gateway
	PublishInvitationBatch(ctx context.Context, batch *models.InvitationBatch) error

	// Mail Gateway
	SendInvitation(ctx context.Context, email mailer.InvitationEmail) error

	// Redis Gateway
	// ClaimNotification returns false while another delivery is working on item index of batchID
	ClaimNotification(ctx context.Context, batchID string, index int) (bool, error)
	ReleaseNotification(ctx context.Context, batchID string, index int) error
	NotificationSent(ctx context.Context, batchID string, index int) (bool, error)
	MarkNotificationSent(ctx context.Context, batchID string, index int) error
}
