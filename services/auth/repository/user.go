package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
)

const userColumns = `id, email, COALESCE(legal_name, '') AS legal_name, COALESCE(otp_secret_key, '') AS otp_secret_key,
		confirmed_at, invitation_token, invited_by_id, invitation_created_at, created_at, updated_at`

// GetUserByEmail retrieves a user by normalised email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := nr.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &user, query, email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, otp_secret_key, confirmed_at, created_at, updated_at)
		VALUES (:id, :email, :otp_secret_key, :confirmed_at, :created_at, :updated_at)
	`
	err := nr.WithDatastoreSegment(ctx, "users", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, user)
		return err
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ConfirmUser marks the account as confirmed and consumes any pending invitation
func (r *AuthRepo) ConfirmUser(ctx context.Context, userID string, at time.Time) error {
	query := `
		UPDATE users
		SET confirmed_at = COALESCE(confirmed_at, $2), invitation_token = NULL, updated_at = $2
		WHERE id = $1
	`
	var res sql.Result
	err := nr.WithDatastoreSegment(ctx, "users", "UPDATE", func() error {
		var err error
		res, err = r.db.ExecContext(ctx, query, userID, at)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// EnsureOTPSecret stores secret when the user has none and returns the secret in effect
func (r *AuthRepo) EnsureOTPSecret(ctx context.Context, userID, secret string) (string, error) {
	query := `
		UPDATE users
		SET otp_secret_key = COALESCE(NULLIF(otp_secret_key, ''), $2), updated_at = NOW()
		WHERE id = $1
		RETURNING otp_secret_key
	`
	var stored string
	err := nr.WithDatastoreSegment(ctx, "users", "UPDATE", func() error {
		return r.db.GetContext(ctx, &stored, query, userID, secret)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to store otp secret: %w", err)
	}
	return stored, nil
}
