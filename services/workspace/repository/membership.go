package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
)

// GetActiveMemberships returns every live membership of userID across all role tables
func (r *WorkspaceRepo) GetActiveMemberships(ctx context.Context, userID string) ([]models.Membership, error) {
	parts := make([]string, 0, len(roleOrder))
	for _, role := range roleOrder {
		parts = append(parts, fmt.Sprintf(
			`SELECT %s FROM %s WHERE user_id = $1 AND deleted_at IS NULL`,
			membershipColumns(role), roleTables[role]))
	}
	query := strings.Join(parts, " UNION ALL ")

	var memberships []models.Membership
	err := nr.WithDatastoreSegment(ctx, "memberships", "SELECT", func() error {
		return r.db.SelectContext(ctx, &memberships, query, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	return memberships, nil
}

// GetCompany retrieves a company by ID
func (r *WorkspaceRepo) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE id = $1`

	var company models.Company
	err := nr.WithDatastoreSegment(ctx, "companies", "SELECT", func() error {
		return r.db.GetContext(ctx, &company, query, companyID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// GetMembership retrieves a live membership by ID from the table of role
func (r *WorkspaceRepo) GetMembership(ctx context.Context, membershipID string, role models.Role) (*models.Membership, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`, membershipColumns(role), table)

	var membership models.Membership
	err = nr.WithDatastoreSegment(ctx, table, "SELECT", func() error {
		return r.db.GetContext(ctx, &membership, query, membershipID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &membership, nil
}

// AttachMembership grants role to userID in companyID, reviving a removed row if one exists.
// It returns the membership ID.
func (r *WorkspaceRepo) AttachMembership(ctx context.Context, userID, companyID string, role models.Role, at time.Time) (string, error) {
	table, err := tableFor(role)
	if err != nil {
		return "", err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, company_id, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $3)
		ON CONFLICT (user_id, company_id) DO UPDATE SET deleted_at = NULL, updated_at = EXCLUDED.updated_at
		RETURNING id
	`, table)

	var id string
	err = nr.WithDatastoreSegment(ctx, table, "UPSERT", func() error {
		return r.db.GetContext(ctx, &id, query, userID, companyID, at)
	})
	if err != nil {
		return "", mapMembershipError(err, "failed to attach membership")
	}
	return id, nil
}

// mapMembershipError turns constraint violations into row-level errors
func mapMembershipError(err error, msg string) error {
	if database.IsUniqueViolation(err) {
		return models.ErrMembershipExists
	}
	if database.IsIntegrityViolation(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return &models.ValidationError{Field: pgErr.ConstraintName, Message: pgErr.Message}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
