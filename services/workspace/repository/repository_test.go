package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/services/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID    = "8d3c2f7e-41a2-4c55-9d1e-2b7f0a6c9e11"
	testCompanyID = "6f1c2c1e-0a4b-4d8e-9a57-3f3b2d1e0c11"
)

var (
	testTime       = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	membershipCols = []string{"id", "user_id", "company_id", "role", "deleted_at", "created_at", "updated_at"}
)

func setupWorkspaceRepoTest(t *testing.T) (*WorkspaceRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewWorkspaceRepo(sqlxDB), mock
}

func TestGetActiveMemberships(t *testing.T) {
	// Arrange
	repo, mock := setupWorkspaceRepoTest(t)
	rows := sqlmock.NewRows(membershipCols).
		AddRow("m-1", testUserID, testCompanyID, "admin", nil, testTime, testTime).
		AddRow("m-2", testUserID, "other-company", "lawyer", nil, testTime, testTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM company_administrators WHERE user_id = $1 AND deleted_at IS NULL UNION ALL")).
		WithArgs(testUserID).
		WillReturnRows(rows)

	// Act
	memberships, err := repo.GetActiveMemberships(context.Background(), testUserID)

	// Assert
	require.NoError(t, err)
	require.Len(t, memberships, 2)
	assert.Equal(t, models.RoleAdministrator, memberships[0].Role)
	assert.Equal(t, models.RoleLawyer, memberships[1].Role)
	assert.True(t, memberships[0].Active())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompany(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT id, name, created_at FROM companies WHERE id = \\$1").
					WithArgs(testCompanyID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
						AddRow(testCompanyID, "Acme Legal", testTime))
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM companies").WillReturnError(sql.ErrNoRows)
			},
			wantErr: models.ErrCompanyNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupWorkspaceRepoTest(t)
			tc.mockSetup(mock)

			company, err := repo.GetCompany(context.Background(), testCompanyID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, company)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Acme Legal", company.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMembership(t *testing.T) {
	t.Run("Reads the role table", func(t *testing.T) {
		repo, mock := setupWorkspaceRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta("'lawyer' AS role, deleted_at, created_at, updated_at FROM company_lawyers WHERE id = $1 AND deleted_at IS NULL")).
			WithArgs("m-1").
			WillReturnRows(sqlmock.NewRows(membershipCols).
				AddRow("m-1", testUserID, testCompanyID, "lawyer", nil, testTime, testTime))

		membership, err := repo.GetMembership(context.Background(), "m-1", models.RoleLawyer)

		require.NoError(t, err)
		assert.Equal(t, testCompanyID, membership.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		repo, mock := setupWorkspaceRepoTest(t)
		mock.ExpectQuery("FROM company_administrators").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetMembership(context.Background(), "m-1", models.RoleAdministrator)

		assert.ErrorIs(t, err, models.ErrMembershipNotFound)
	})

	t.Run("Unknown role", func(t *testing.T) {
		repo, _ := setupWorkspaceRepoTest(t)

		_, err := repo.GetMembership(context.Background(), "m-1", models.Role("owner"))

		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAttachMembership(t *testing.T) {
	// Arrange
	repo, mock := setupWorkspaceRepoTest(t)
	mock.ExpectQuery("INSERT INTO company_lawyers (.+) ON CONFLICT \\(user_id, company_id\\) DO UPDATE SET deleted_at = NULL").
		WithArgs(testUserID, testCompanyID, testTime).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("m-9"))

	// Act
	id, err := repo.AttachMembership(context.Background(), testUserID, testCompanyID, models.RoleLawyer, testTime)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "m-9", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvitedUser(t *testing.T) {
	token := "abc123"
	inviter := "admin-1"
	user := &models.User{
		ID:                  testUserID,
		Email:               "new@x.com",
		OTPSecretKey:        "JBSWY3DPEHPK3PXP",
		InvitationToken:     &token,
		InvitedByID:         &inviter,
		InvitationCreatedAt: &testTime,
		CreatedAt:           testTime,
		UpdatedAt:           testTime,
	}

	testCases := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "Success"},
		{name: "Email taken", execErr: &pgconn.PgError{Code: "23505"}, wantErr: models.ErrUserExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupWorkspaceRepoTest(t)
			exp := mock.ExpectExec("INSERT INTO users").
				WithArgs(testUserID, "new@x.com", "JBSWY3DPEHPK3PXP", &token, &inviter, &testTime, testTime, testTime)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.CreateInvitedUser(context.Background(), user)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithinTx(t *testing.T) {
	t.Run("Commits on success", func(t *testing.T) {
		repo, mock := setupWorkspaceRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := repo.WithinTx(context.Background(), func(tx workspace.TxRepo) error { return nil })

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back on error", func(t *testing.T) {
		repo, mock := setupWorkspaceRepoTest(t)
		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.WithinTx(context.Background(), func(tx workspace.TxRepo) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSavepoint_IsolatesFailedRow(t *testing.T) {
	// Arrange
	repo, mock := setupWorkspaceRepoTest(t)
	mock.ExpectBegin()

	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO company_lawyers").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "company_lawyers_company_id_fkey", Message: "violates foreign key constraint"})
	mock.ExpectExec(regexp.QuoteMeta("ROLLBACK TO SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT sp_2")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO company_lawyers").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT sp_2")).WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectCommit()

	membership := func(id string) *models.Membership {
		return &models.Membership{ID: id, UserID: testUserID, CompanyID: testCompanyID, Role: models.RoleLawyer, CreatedAt: testTime, UpdatedAt: testTime}
	}

	// Act
	var first, second error
	err := repo.WithinTx(context.Background(), func(tx workspace.TxRepo) error {
		first = tx.Savepoint(context.Background(), func() error {
			return tx.InsertMembership(context.Background(), membership("m-1"))
		})
		second = tx.Savepoint(context.Background(), func() error {
			return tx.InsertMembership(context.Background(), membership("m-2"))
		})
		return nil
	})

	// Assert
	require.NoError(t, err)
	var verr *models.ValidationError
	require.ErrorAs(t, first, &verr)
	assert.Equal(t, "company_lawyers_company_id_fkey", verr.Field)
	assert.NoError(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRepo_Memberships(t *testing.T) {
	deletedAt := testTime.Add(-time.Hour)

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		run       func(ctx context.Context, tx workspace.TxRepo) error
	}{
		{
			name: "FindMembership returns removed rows",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM company_investors WHERE user_id = $1 AND company_id = $2")).
					WithArgs(testUserID, testCompanyID).
					WillReturnRows(sqlmock.NewRows(membershipCols).
						AddRow("m-1", testUserID, testCompanyID, "investor", deletedAt, testTime, testTime))
			},
			run: func(ctx context.Context, tx workspace.TxRepo) error {
				m, err := tx.FindMembership(ctx, testUserID, testCompanyID, models.RoleInvestor)
				if err != nil {
					return err
				}
				if m.Active() {
					return errors.New("expected removed membership")
				}
				return nil
			},
		},
		{
			name: "FindMembership not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM company_workers").WillReturnError(sql.ErrNoRows)
			},
			run: func(ctx context.Context, tx workspace.TxRepo) error {
				_, err := tx.FindMembership(ctx, testUserID, testCompanyID, models.RoleWorker)
				if !errors.Is(err, models.ErrMembershipNotFound) {
					return errors.New("expected ErrMembershipNotFound")
				}
				return nil
			},
		},
		{
			name: "InsertMembership unique violation",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO company_administrators").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			run: func(ctx context.Context, tx workspace.TxRepo) error {
				err := tx.InsertMembership(ctx, &models.Membership{ID: "m-1", Role: models.RoleAdministrator})
				if !errors.Is(err, models.ErrMembershipExists) {
					return errors.New("expected ErrMembershipExists")
				}
				return nil
			},
		},
		{
			name: "ReactivateMembership",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE company_lawyers SET deleted_at = NULL, updated_at = $2 WHERE id = $1")).
					WithArgs("m-1", testTime).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(ctx context.Context, tx workspace.TxRepo) error {
				return tx.ReactivateMembership(ctx, models.RoleLawyer, "m-1", testTime)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo, mock := setupWorkspaceRepoTest(t)
			mock.ExpectBegin()
			tc.mockSetup(mock)
			mock.ExpectCommit()

			// Act
			err := repo.WithinTx(context.Background(), func(tx workspace.TxRepo) error {
				return tc.run(context.Background(), tx)
			})

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
