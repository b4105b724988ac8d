package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
)

const userColumns = `id, email, COALESCE(legal_name, '') AS legal_name, COALESCE(otp_secret_key, '') AS otp_secret_key,
		confirmed_at, invitation_token, invited_by_id, invitation_created_at, created_at, updated_at`

func getUserByEmail(ctx context.Context, q sqlx.QueryerContext, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := nr.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return sqlx.GetContext(ctx, q, &user, query, email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by normalised email
func (r *WorkspaceRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return getUserByEmail(ctx, r.db, email)
}

// CreateInvitedUser inserts an unconfirmed account carrying an invitation token
func (r *WorkspaceRepo) CreateInvitedUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, otp_secret_key, invitation_token, invited_by_id, invitation_created_at, created_at, updated_at)
		VALUES (:id, :email, :otp_secret_key, :invitation_token, :invited_by_id, :invitation_created_at, :created_at, :updated_at)
	`
	err := nr.WithDatastoreSegment(ctx, "users", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, user)
		return err
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrUserExists
		}
		return fmt.Errorf("failed to insert invited user: %w", err)
	}
	return nil
}
