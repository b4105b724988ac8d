package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/flexwork/internal/pkg/constants"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	natspkg "github.com/piresc/flexwork/internal/pkg/nats"
	"github.com/piresc/flexwork/internal/pkg/requestcontext"
	"github.com/piresc/flexwork/services/workspace"
)

// InvitationHandler consumes invitation batches from JetStream
type InvitationHandler struct {
	workspaceUC workspace.WorkspaceUC
	consumer    *natspkg.Consumer
}

// NewInvitationHandler creates a new invitation job handler
func NewInvitationHandler(workspaceUC workspace.WorkspaceUC) *InvitationHandler {
	return &InvitationHandler{workspaceUC: workspaceUC}
}

// InitConsumer binds the durable invitation consumer and starts processing
func (h *InvitationHandler) InitConsumer(ctx context.Context, client *natspkg.Client, cfg natspkg.ConsumerConfig, concurrency int) error {
	consumer, err := natspkg.NewConsumer(ctx, client, cfg, concurrency)
	if err != nil {
		return fmt.Errorf("failed to create invitation consumer: %w", err)
	}
	if err := consumer.Start(h.handleMsg); err != nil {
		return err
	}
	h.consumer = consumer

	logger.Info("Invitation consumer started",
		logger.String("consumer", cfg.ConsumerName),
		logger.Int("concurrency", concurrency))
	return nil
}

// Stop waits for in-flight batches
func (h *InvitationHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *InvitationHandler) handleMsg(ctx context.Context, msg jetstream.Msg) error {
	return h.HandleInvitationBatch(ctx, msg.Data())
}

// HandleInvitationBatch decodes one job message and runs it. Malformed messages are terminal.
func (h *InvitationHandler) HandleInvitationBatch(ctx context.Context, data []byte) error {
	var batch models.InvitationBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return natspkg.Terminal(fmt.Errorf("failed to unmarshal invitation batch: %w", err))
	}
	if batch.ID == "" || batch.CompanyID == "" {
		return natspkg.Terminal(errors.New("invitation batch without id or company"))
	}

	ctx = requestcontext.With(ctx, requestcontext.ForJob(constants.ConsumerInvitationNotifier, batch.ID))
	logger.InfoCtx(ctx, "Processing invitation batch",
		logger.String("batch_id", batch.ID),
		logger.CompanyID(batch.CompanyID),
		logger.Int("notifications", len(batch.Notifications)))

	return h.workspaceUC.ProcessInvitationBatch(ctx, &batch)
}
