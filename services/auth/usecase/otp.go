package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/flexwork/internal/pkg/models"
)

// verifyResult is what one locked verification observed
type verifyResult struct {
	valid      bool
	refused    bool             // throttled before the code was looked at
	status     models.OTPStatus // after the attempt
	retryAfter time.Duration
}

// withOTPLock takes the in-process lock for userID, then the row lock
func (u *AuthUC) withOTPLock(ctx context.Context, userID string, fn func(state *models.OTPState) error) error {
	return u.locks.Do(userID, func() error {
		return u.authRepo.WithOTPLock(ctx, userID, fn)
	})
}

func (u *AuthUC) verify(ctx context.Context, userID, code string) (verifyResult, error) {
	var res verifyResult
	maxAttempts, window := u.cfg.OTP.MaxAttempts, u.cfg.OTP.RateLimitWindow

	err := u.withOTPLock(ctx, userID, func(state *models.OTPState) error {
		now := u.now()

		if state.Evaluate(now, maxAttempts, window) == models.OTPThrottled {
			res.refused = true
			res.status = models.OTPThrottled
			res.retryAfter = state.RetryAfter(now, window)
			return nil
		}

		if u.codes.Validate(state.SecretKey, code, now) {
			state.Reset()
			res.valid = true
		} else {
			state.RecordFailure(now)
		}

		res.status = state.Evaluate(now, maxAttempts, window)
		res.retryAfter = state.RetryAfter(now, window)
		return nil
	})
	if err != nil {
		return verifyResult{}, fmt.Errorf("failed to verify otp: %w", err)
	}
	return res, nil
}

// Verify checks code for userID. A throttled user gets false without the code being
// looked at; a wrong code is false, never an error.
func (u *AuthUC) Verify(ctx context.Context, userID, code string) (bool, error) {
	res, err := u.verify(ctx, userID, code)
	if err != nil {
		return false, err
	}
	return res.valid, nil
}

// IsRateLimited reports whether userID is throttled. A stale failure streak is reset.
func (u *AuthUC) IsRateLimited(ctx context.Context, userID string) (bool, error) {
	limited, _, err := u.rateLimitStatus(ctx, userID)
	return limited, err
}

func (u *AuthUC) rateLimitStatus(ctx context.Context, userID string) (bool, time.Duration, error) {
	var (
		limited    bool
		retryAfter time.Duration
	)
	err := u.withOTPLock(ctx, userID, func(state *models.OTPState) error {
		now := u.now()
		limited = state.Evaluate(now, u.cfg.OTP.MaxAttempts, u.cfg.OTP.RateLimitWindow) == models.OTPThrottled
		if limited {
			retryAfter = state.RetryAfter(now, u.cfg.OTP.RateLimitWindow)
		}
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("failed to check otp rate limit: %w", err)
	}
	return limited, retryAfter, nil
}
