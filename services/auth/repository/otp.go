package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
)

// WithOTPLock loads the user's OTP columns with SELECT ... FOR UPDATE, runs fn and writes
// the columns back if fn changed them. The row stays locked until commit or rollback.
func (r *AuthRepo) WithOTPLock(ctx context.Context, userID string, fn func(state *models.OTPState) error) error {
	return nr.WithDatastoreSegment(ctx, "users", "SELECT FOR UPDATE", func() error {
		return r.withOTPLock(ctx, userID, fn)
	})
}

func (r *AuthRepo) withOTPLock(ctx context.Context, userID string, fn func(state *models.OTPState) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if r.lockTimeout > 0 {
		if _, err := tx.ExecContext(ctx, database.LockTimeoutStatement(r.lockTimeout)); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	query := `
		SELECT id, COALESCE(otp_secret_key, '') AS otp_secret_key, otp_failed_attempts_count, otp_first_failed_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var state models.OTPState
	if err := tx.GetContext(ctx, &state, query, userID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.ErrUserNotFound
		case database.IsLockTimeout(err):
			return fmt.Errorf("%w: user %s", models.ErrLockTimeout, userID)
		}
		return fmt.Errorf("failed to lock otp state: %w", err)
	}

	if err := fn(&state); err != nil {
		return err
	}

	if state.Dirty() {
		update := `
			UPDATE users
			SET otp_failed_attempts_count = $2, otp_first_failed_at = $3, updated_at = NOW()
			WHERE id = $1
		`
		if _, err := tx.ExecContext(ctx, update, userID, state.FailedAttempts, state.FirstFailedAt); err != nil {
			return fmt.Errorf("failed to update otp state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit otp state: %w", err)
	}
	return nil
}
