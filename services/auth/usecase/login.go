package usecase

import (
	"context"
	"errors"
	"fmt"

	jwtpkg "github.com/piresc/flexwork/internal/pkg/jwt"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/auth"
)

// RequestLoginCode emails a login code to an existing account
func (u *AuthUC) RequestLoginCode(ctx context.Context, email string) error {
	user, err := u.authRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	return u.sendCode(ctx, user, mailer.PurposeLogin)
}

// Login exchanges a valid code for a token. An invited user is confirmed by their first login.
func (u *AuthUC) Login(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	user, err := u.authRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, auth.ErrInvalidCode
		}
		return nil, err
	}

	if err := u.checkCode(ctx, user.ID, code); err != nil {
		return nil, err
	}

	if !user.IsConfirmed() {
		if err := u.authRepo.ConfirmUser(ctx, user.ID, u.now()); err != nil {
			return nil, fmt.Errorf("failed to confirm user: %w", err)
		}
	}

	return u.issueToken(user)
}

// checkCode maps a verification result onto the auth errors
func (u *AuthUC) checkCode(ctx context.Context, userID, code string) error {
	res, err := u.verify(ctx, userID, code)
	if err != nil {
		return err
	}
	if res.valid {
		return nil
	}
	if res.refused {
		logger.WarnCtx(ctx, "OTP verification throttled", logger.UserID(userID))
		return &auth.RateLimitError{RetryAfter: res.retryAfter}
	}
	if res.status == models.OTPThrottled {
		// this attempt was judged; the throttle applies from the next one
		logger.WarnCtx(ctx, "OTP failure limit reached", logger.UserID(userID))
	}
	return auth.ErrInvalidCode
}

// sendCode refuses throttled users and users inside the resend cooldown, then mails the current code
func (u *AuthUC) sendCode(ctx context.Context, user *models.User, purpose mailer.CodePurpose) error {
	limited, retryAfter, err := u.rateLimitStatus(ctx, user.ID)
	if err != nil {
		return err
	}
	if limited {
		return &auth.RateLimitError{RetryAfter: retryAfter}
	}

	secret := user.OTPSecretKey
	if secret == "" {
		generated, err := u.codes.GenerateSecret(user.Email)
		if err != nil {
			return fmt.Errorf("failed to generate otp secret: %w", err)
		}
		if secret, err = u.authRepo.EnsureOTPSecret(ctx, user.ID, generated); err != nil {
			return fmt.Errorf("failed to store otp secret: %w", err)
		}
	}

	ok, wait, err := u.authGW.AcquireSendCooldown(ctx, user.ID, u.cfg.OTP.ResendCooldown)
	if err != nil {
		return fmt.Errorf("failed to check resend cooldown: %w", err)
	}
	if !ok {
		return &auth.RateLimitError{RetryAfter: wait}
	}

	code, err := u.codes.Code(secret, u.now())
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	if err := u.authGW.SendCode(ctx, mailer.CodeEmail{
		To:      user.Email,
		Code:    code,
		Purpose: purpose,
		Minutes: int(u.cfg.OTP.Drift.Minutes()),
	}); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	logger.InfoCtx(ctx, "OTP code sent",
		logger.UserID(user.ID),
		logger.String("email", utils.MaskEmail(user.Email)),
		logger.String("purpose", string(purpose)))
	return nil
}

func (u *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
