package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/utils"
)

const invitationTokenLength = 40

// errNotificationPending marks an item that could not be settled by this delivery. The batch
// is handed back to the queue so a later delivery picks it up.
var errNotificationPending = errors.New("invitation notification pending")

// ProcessInvitationBatch sends every notification of batch. Items already sent by an earlier
// delivery are skipped. A failed item is logged and does not fail the batch; an item that
// another delivery is still working on keeps the batch queued.
func (u *WorkspaceUC) ProcessInvitationBatch(ctx context.Context, batch *models.InvitationBatch) error {
	company, err := u.repo.GetCompany(ctx, batch.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to load company %s: %w", batch.CompanyID, err)
	}

	var pending, failed int
	for i, item := range batch.Notifications {
		err := u.deliver(ctx, company, batch.ID, i, item)
		switch {
		case err == nil:
		case errors.Is(err, errNotificationPending):
			pending++
		default:
			failed++
			logger.ErrorCtx(ctx, "Failed to deliver invitation",
				logger.String("batch_id", batch.ID),
				logger.Int("index", i),
				logger.String("type", string(item.Type)),
				logger.String("email", utils.MaskEmail(item.Email)),
				logger.Err(err))
		}
	}

	if pending > 0 {
		return fmt.Errorf("%d of %d invitation notifications not settled: %w",
			pending, len(batch.Notifications), errNotificationPending)
	}

	if failed > 0 {
		logger.WarnCtx(ctx, "Invitation batch processed with failures",
			logger.String("batch_id", batch.ID),
			logger.CompanyID(batch.CompanyID),
			logger.Int("notifications", len(batch.Notifications)),
			logger.Int("failed", failed))
		return nil
	}
	logger.InfoCtx(ctx, "Invitation batch processed",
		logger.String("batch_id", batch.ID),
		logger.CompanyID(batch.CompanyID),
		logger.Int("notifications", len(batch.Notifications)))
	return nil
}

// deliver handles item index under its in-flight lock. The sent marker is written only
// after the email went out.
func (u *WorkspaceUC) deliver(ctx context.Context, company *models.Company, batchID string, index int, item models.InvitationNotification) error {
	claimed, err := u.gw.ClaimNotification(ctx, batchID, index)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to claim invitation notification",
			logger.String("batch_id", batchID), logger.Int("index", index), logger.Err(err))
		return fmt.Errorf("%w: %v", errNotificationPending, err)
	}
	if !claimed {
		logger.DebugCtx(ctx, "Invitation notification in flight elsewhere",
			logger.String("batch_id", batchID), logger.Int("index", index))
		return errNotificationPending
	}
	defer func() {
		if err := u.gw.ReleaseNotification(ctx, batchID, index); err != nil {
			logger.WarnCtx(ctx, "Failed to release invitation claim",
				logger.String("batch_id", batchID), logger.Int("index", index), logger.Err(err))
		}
	}()

	sent, err := u.gw.NotificationSent(ctx, batchID, index)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check invitation notification",
			logger.String("batch_id", batchID), logger.Int("index", index), logger.Err(err))
		return fmt.Errorf("%w: %v", errNotificationPending, err)
	}
	if sent {
		logger.DebugCtx(ctx, "Invitation notification already sent",
			logger.String("batch_id", batchID), logger.Int("index", index))
		return nil
	}

	if err := u.notify(ctx, company, item); err != nil {
		return err
	}

	if err := u.gw.MarkNotificationSent(ctx, batchID, index); err != nil {
		// a redelivery may send this item again
		logger.WarnCtx(ctx, "Failed to record sent invitation",
			logger.String("batch_id", batchID), logger.Int("index", index), logger.Err(err))
	}
	return nil
}

func (u *WorkspaceUC) notify(ctx context.Context, company *models.Company, item models.InvitationNotification) error {
	switch item.Type {
	case models.NotificationNewUser:
		return u.notifyNewUser(ctx, company, item)
	case models.NotificationExistingUser:
		return u.notifyExistingUser(ctx, company, item)
	default:
		logger.WarnCtx(ctx, "Unknown invitation notification type", logger.String("type", string(item.Type)))
		return nil
	}
}

func (u *WorkspaceUC) notifyNewUser(ctx context.Context, company *models.Company, item models.InvitationNotification) error {
	user, err := u.repo.GetUserByEmail(ctx, item.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		user, err = u.createInvitedUser(ctx, item)
	}
	if err != nil {
		return err
	}

	if _, err := u.repo.AttachMembership(ctx, user.ID, company.ID, item.Role, u.now()); err != nil {
		return fmt.Errorf("failed to attach membership: %w", err)
	}

	link := u.link("/login")
	if !user.IsConfirmed() && user.InvitationToken != nil {
		link = u.link("/invitations/accept", "invitation_token", *user.InvitationToken)
	}

	return u.gw.SendInvitation(ctx, mailer.InvitationEmail{
		To:          user.Email,
		CompanyName: company.Name,
		Role:        item.Role,
		NewUser:     !user.IsConfirmed(),
		LinkURL:     link,
	})
}

func (u *WorkspaceUC) createInvitedUser(ctx context.Context, item models.InvitationNotification) (*models.User, error) {
	secret, err := u.codes.GenerateSecret(item.Email)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateRandomHex(invitationTokenLength)
	if err != nil {
		return nil, err
	}

	now := u.now()
	inviter := item.InviterID
	user := &models.User{
		ID:                  u.newID(),
		Email:               item.Email,
		OTPSecretKey:        secret,
		InvitationToken:     &token,
		InvitedByID:         &inviter,
		InvitationCreatedAt: &now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err = u.repo.CreateInvitedUser(ctx, user)
	if errors.Is(err, models.ErrUserExists) {
		// an earlier delivery or a signup got there first
		return u.repo.GetUserByEmail(ctx, item.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create invited user: %w", err)
	}

	logger.InfoCtx(ctx, "Invited user created",
		logger.UserID(user.ID), logger.CompanyID(item.CompanyID))
	return user, nil
}

func (u *WorkspaceUC) notifyExistingUser(ctx context.Context, company *models.Company, item models.InvitationNotification) error {
	membership, err := u.repo.GetMembership(ctx, item.MembershipID, item.Role)
	if errors.Is(err, models.ErrMembershipNotFound) {
		logger.WarnCtx(ctx, "Membership gone before invitation was sent",
			logger.String("membership_id", item.MembershipID),
			logger.String("role", string(item.Role)))
		return nil
	}
	if err != nil {
		return err
	}

	return u.gw.SendInvitation(ctx, mailer.InvitationEmail{
		To:          item.Email,
		CompanyName: company.Name,
		Role:        membership.Role,
		LinkURL:     u.link("/login"),
	})
}

func (u *WorkspaceUC) link(path string, query ...string) string {
	base := strings.TrimRight(u.cfg.App.BaseURL, "/")
	if len(query) < 2 {
		return base + path
	}
	values := url.Values{}
	for i := 0; i+1 < len(query); i += 2 {
		values.Set(query[i], query[i+1])
	}
	return base + path + "?" + values.Encode()
}
