package gateway

import (
	"context"
	"errors"

	"github.com/piresc/flexwork/internal/pkg/constants"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
)

var errNoPublisher = errors.New("invitation publisher not configured")

// PublishInvitationBatch enqueues batch. The batch ID is the JetStream message ID, so a
// retried publish is dropped by the stream's duplicate window.
func (g *WorkspaceGW) PublishInvitationBatch(ctx context.Context, batch *models.InvitationBatch) error {
	if g.publisher == nil {
		return errNoPublisher
	}

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.publisher.Publish(ctx, constants.SubjectInvitationBatch, batch, batch.ID)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Invitation batch enqueued",
		logger.String("batch_id", batch.ID),
		logger.CompanyID(batch.CompanyID),
		logger.Int("notifications", len(batch.Notifications)))
	return nil
}
