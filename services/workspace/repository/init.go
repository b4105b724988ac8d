package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/flexwork/internal/pkg/models"
)

// WorkspaceRepo implements workspace.WorkspaceRepo on Postgres
type WorkspaceRepo struct {
	db *sqlx.DB
}

// NewWorkspaceRepo creates a new workspace repository
func NewWorkspaceRepo(db *sqlx.DB) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

// Each role lives in its own join table with the same shape
// (id, user_id, company_id, deleted_at, created_at, updated_at) and UNIQUE (user_id, company_id).
var roleTables = map[models.Role]string{
	models.RoleAdministrator: "company_administrators",
	models.RoleLawyer:        "company_lawyers",
	models.RoleWorker:        "company_workers",
	models.RoleInvestor:      "company_investors",
}

// roleOrder fixes the order of UNION queries
var roleOrder = []models.Role{
	models.RoleAdministrator,
	models.RoleLawyer,
	models.RoleWorker,
	models.RoleInvestor,
}

func tableFor(role models.Role) (string, error) {
	table, ok := roleTables[role]
	if !ok {
		return "", &models.ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", role)}
	}
	return table, nil
}

// membershipColumns selects a role table row with its role name as a literal
func membershipColumns(role models.Role) string {
	return fmt.Sprintf(`id, user_id, company_id, '%s' AS role, deleted_at, created_at, updated_at`, role)
}
