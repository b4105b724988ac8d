package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
	"github.com/piresc/flexwork/services/workspace"
)

// WithinTx runs fn inside one transaction. fn's error rolls everything back.
func (r *WorkspaceRepo) WithinTx(ctx context.Context, fn func(tx workspace.TxRepo) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txRepo{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txRepo is not safe for concurrent use; a transaction is one connection
type txRepo struct {
	tx         *sqlx.Tx
	savepoints int
}

// Savepoint runs fn between SAVEPOINT and RELEASE, rolling back to the savepoint when fn fails
func (t *txRepo) Savepoint(ctx context.Context, fn func() error) error {
	t.savepoints++
	name := fmt.Sprintf("sp_%d", t.savepoints)

	if _, err := t.tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := fn(); err != nil {
		if _, rerr := t.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rerr != nil {
			return errors.Join(err, fmt.Errorf("failed to roll back savepoint: %w", rerr))
		}
		return err
	}

	if _, err := t.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	return nil
}

func (t *txRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return getUserByEmail(ctx, t.tx, email)
}

// FindMembership returns the membership of userID in companyID for role, removed or not
func (t *txRepo) FindMembership(ctx context.Context, userID, companyID string, role models.Role) (*models.Membership, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 AND company_id = $2`, membershipColumns(role), table)

	var membership models.Membership
	err = nr.WithDatastoreSegment(ctx, table, "SELECT", func() error {
		return t.tx.GetContext(ctx, &membership, query, userID, companyID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	return &membership, nil
}

func (t *txRepo) InsertMembership(ctx context.Context, membership *models.Membership) error {
	table, err := tableFor(membership.Role)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, company_id, created_at, updated_at)
		VALUES (:id, :user_id, :company_id, :created_at, :updated_at)
	`, table)

	err = nr.WithDatastoreSegment(ctx, table, "INSERT", func() error {
		_, err := t.tx.NamedExecContext(ctx, query, membership)
		return err
	})
	if err != nil {
		return mapMembershipError(err, "failed to insert membership")
	}
	return nil
}

func (t *txRepo) ReactivateMembership(ctx context.Context, role models.Role, membershipID string, at time.Time) error {
	table, err := tableFor(role)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET deleted_at = NULL, updated_at = $2 WHERE id = $1`, table)

	var res sql.Result
	err = nr.WithDatastoreSegment(ctx, table, "UPDATE", func() error {
		var err error
		res, err = t.tx.ExecContext(ctx, query, membershipID, at)
		return err
	})
	if err != nil {
		return mapMembershipError(err, "failed to reactivate membership")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrMembershipNotFound
	}
	return nil
}
