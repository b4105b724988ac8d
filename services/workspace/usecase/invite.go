package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/pkg/policy"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/workspace"
)

const emailRules = "required,email,max=255"

func newUUID() string {
	return uuid.NewString()
}

// InviteMembers reconciles memberships for every spec in one transaction and, after commit,
// enqueues a single notification batch for the rows that changed
func (u *WorkspaceUC) InviteMembers(ctx context.Context, actor models.Actor, companyID string, specs []models.MemberSpec) (*models.InviteSummary, error) {
	if len(specs) == 0 {
		return nil, &models.ValidationError{Field: "members", Message: "at least one member is required"}
	}

	memberships := actor.Memberships
	if memberships == nil {
		var err error
		if memberships, err = u.repo.GetActiveMemberships(ctx, actor.UserID); err != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", err)
		}
	}

	roles := make([]models.Role, len(specs))
	for i, spec := range specs {
		roles[i] = spec.Role
	}
	if decision := policy.CanManageRoles(memberships, companyID, roles); !decision.Allowed {
		logger.WarnCtx(ctx, "Invitation denied",
			logger.UserID(actor.UserID),
			logger.CompanyID(companyID),
			logger.Any("disallowed_roles", decision.DisallowedRoles))
		return nil, &models.AuthorizationError{DisallowedRoles: decision.DisallowedRoles}
	}

	var (
		results       []models.MemberOutcome
		notifications []models.InvitationNotification
	)
	err := u.repo.WithinTx(ctx, func(tx workspace.TxRepo) error {
		results = make([]models.MemberOutcome, 0, len(specs))
		notifications = nil
		seen := make(map[string]bool, len(specs))

		for i, spec := range specs {
			outcome, note, err := u.inviteOne(ctx, tx, actor, companyID, spec, seen)
			if err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			results = append(results, outcome)
			if note != nil {
				notifications = append(notifications, *note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invite members: %w", err)
	}

	summary := summarize(results)

	if len(notifications) > 0 {
		batch := &models.InvitationBatch{
			ID:            u.newID(),
			CompanyID:     companyID,
			InviterID:     actor.UserID,
			Notifications: notifications,
			EnqueuedAt:    u.now(),
		}
		if err := u.gw.PublishInvitationBatch(ctx, batch); err != nil {
			logger.ErrorCtx(ctx, "Failed to enqueue invitation batch",
				logger.CompanyID(companyID),
				logger.String("batch_id", batch.ID),
				logger.Int("notifications", len(notifications)),
				logger.Err(err))
			return nil, fmt.Errorf("failed to enqueue invitation notifications: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Members invited",
		logger.CompanyID(companyID),
		logger.Int("invited", summary.InvitedCount),
		logger.Int("updated", summary.UpdatedCount),
		logger.Int("errors", len(summary.Errors)))
	return summary, nil
}

// inviteOne resolves one spec. Row problems come back as an Errored or Skipped outcome;
// a returned error is an infrastructure failure that aborts the batch.
func (u *WorkspaceUC) inviteOne(
	ctx context.Context,
	tx workspace.TxRepo,
	actor models.Actor,
	companyID string,
	spec models.MemberSpec,
	seen map[string]bool,
) (models.MemberOutcome, *models.InvitationNotification, error) {
	email := utils.NormalizeEmail(spec.Email)
	outcome := models.MemberOutcome{Email: email, Role: spec.Role, Status: models.OutcomePending}

	errored := func(msg string) (models.MemberOutcome, *models.InvitationNotification, error) {
		outcome.Status = models.OutcomeErrored
		outcome.Error = msg
		return outcome, nil, nil
	}

	if err := u.validate.Var(email, emailRules); err != nil {
		return errored("invalid email address")
	}
	if !spec.Role.Valid() {
		return errored(fmt.Sprintf("unknown role %q", spec.Role))
	}
	if email == utils.NormalizeEmail(actor.Email) {
		return errored("you cannot invite yourself")
	}

	key := email + "|" + string(spec.Role)
	if seen[key] {
		outcome.Status = models.OutcomeSkipped
		return outcome, nil, nil
	}
	seen[key] = true

	var note *models.InvitationNotification
	err := tx.Savepoint(ctx, func() error {
		var err error
		outcome.Status, note, err = u.reconcile(ctx, tx, actor, companyID, email, spec.Role)
		return err
	})

	var verr *models.ValidationError
	switch {
	case err == nil:
		return outcome, note, nil
	case errors.Is(err, models.ErrMembershipExists):
		// a concurrent invite won the insert
		outcome.Status = models.OutcomeSkipped
		return outcome, nil, nil
	case errors.Is(err, models.ErrMembershipNotFound):
		// the removed membership was deleted before it could be reactivated
		return errored("membership changed while inviting, please try again")
	case errors.As(err, &verr):
		return errored(verr.Error())
	}
	return outcome, nil, err
}

func (u *WorkspaceUC) reconcile(
	ctx context.Context,
	tx workspace.TxRepo,
	actor models.Actor,
	companyID, email string,
	role models.Role,
) (models.MemberOutcomeStatus, *models.InvitationNotification, error) {
	note := &models.InvitationNotification{
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		InviterID: actor.UserID,
	}

	user, err := tx.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		candidate := models.User{Email: email, InvitedByID: &actor.UserID}
		if err := u.validate.Validate(candidate); err != nil {
			return models.OutcomePending, nil, &models.ValidationError{Field: "email", Message: utils.ValidationMessage(err)}
		}
		note.Type = models.NotificationNewUser
		return models.OutcomeCreated, note, nil
	}
	if err != nil {
		return models.OutcomePending, nil, err
	}

	now := u.now()
	membership, err := tx.FindMembership(ctx, user.ID, companyID, role)
	switch {
	case errors.Is(err, models.ErrMembershipNotFound):
		membership = &models.Membership{
			ID:        u.newID(),
			UserID:    user.ID,
			CompanyID: companyID,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.InsertMembership(ctx, membership); err != nil {
			return models.OutcomePending, nil, err
		}
	case err != nil:
		return models.OutcomePending, nil, err
	case membership.Active():
		return models.OutcomeSkipped, nil, nil
	default:
		if err := tx.ReactivateMembership(ctx, role, membership.ID, now); err != nil {
			return models.OutcomePending, nil, err
		}
	}

	note.Type = models.NotificationExistingUser
	note.MembershipID = membership.ID
	return models.OutcomeUpdated, note, nil
}

func summarize(results []models.MemberOutcome) *models.InviteSummary {
	summary := &models.InviteSummary{Results: results}
	for _, r := range results {
		switch r.Status {
		case models.OutcomeCreated:
			summary.InvitedCount++
		case models.OutcomeUpdated:
			summary.UpdatedCount++
		case models.OutcomeErrored:
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", r.Email, r.Error))
		}
	}
	summary.TotalProcessed = summary.InvitedCount + summary.UpdatedCount
	return summary
}
