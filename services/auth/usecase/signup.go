package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/auth"
)

// RequestSignupCode creates a temporary unconfirmed account when needed and mails it a code
func (u *AuthUC) RequestSignupCode(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	user, err := u.authRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if user.IsConfirmed() {
			return auth.ErrEmailTaken
		}
	case errors.Is(err, models.ErrUserNotFound):
		if user, err = u.createTemporaryUser(ctx, email); err != nil {
			return err
		}
	default:
		return err
	}

	return u.sendCode(ctx, user, mailer.PurposeSignup)
}

func (u *AuthUC) createTemporaryUser(ctx context.Context, email string) (*models.User, error) {
	secret, err := u.codes.GenerateSecret(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp secret: %w", err)
	}

	now := u.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		OTPSecretKey: secret,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.authRepo.CreateUser(ctx, user)
	if errors.Is(err, models.ErrUserExists) {
		// lost a race with a concurrent signup for the same address
		existing, getErr := u.authRepo.GetUserByEmail(ctx, email)
		if getErr != nil {
			return nil, getErr
		}
		if existing.IsConfirmed() {
			return nil, auth.ErrEmailTaken
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CompleteSignup verifies the code of a pending signup, confirms the account and issues a token
func (u *AuthUC) CompleteSignup(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	user, err := u.authRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, auth.ErrInvalidCode
		}
		return nil, err
	}
	if user.IsConfirmed() {
		return nil, auth.ErrEmailTaken
	}

	if err := u.checkCode(ctx, user.ID, code); err != nil {
		return nil, err
	}

	if err := u.authRepo.ConfirmUser(ctx, user.ID, u.now()); err != nil {
		return nil, fmt.Errorf("failed to confirm user: %w", err)
	}

	return u.issueToken(user)
}
