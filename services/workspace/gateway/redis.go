package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/flexwork/internal/pkg/constants"
)

const (
	// notificationSentTTL outlives every redelivery of a batch
	notificationSentTTL = 24 * time.Hour
	// notificationClaimTTL frees the item of a worker that died mid-send
	notificationClaimTTL = time.Minute
)

// ClaimNotification takes the in-flight lock of item index of batchID. It returns false
// while another delivery holds it.
func (g *WorkspaceGW) ClaimNotification(ctx context.Context, batchID string, index int) (bool, error) {
	key := fmt.Sprintf(constants.KeyInvitationInFlight, batchID, index)
	ok, err := g.redis.SetNX(ctx, key, time.Now().Unix(), notificationClaimTTL)
	if err != nil {
		return false, fmt.Errorf("failed to claim notification: %w", err)
	}
	return ok, nil
}

// ReleaseNotification drops the in-flight lock of an item
func (g *WorkspaceGW) ReleaseNotification(ctx context.Context, batchID string, index int) error {
	key := fmt.Sprintf(constants.KeyInvitationInFlight, batchID, index)
	if err := g.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release notification: %w", err)
	}
	return nil
}

// NotificationSent reports whether item index of batchID was already delivered
func (g *WorkspaceGW) NotificationSent(ctx context.Context, batchID string, index int) (bool, error) {
	key := fmt.Sprintf(constants.KeyInvitationSent, batchID, index)
	sent, err := g.redis.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}
	return sent, nil
}

// MarkNotificationSent records a delivered item so redeliveries skip it
func (g *WorkspaceGW) MarkNotificationSent(ctx context.Context, batchID string, index int) error {
	key := fmt.Sprintf(constants.KeyInvitationSent, batchID, index)
	if err := g.redis.Set(ctx, key, time.Now().Unix(), notificationSentTTL); err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}
