package workspace

import (
	"context"
	"time"

	"github.com/piresc/flexwork/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/flexwork/services/workspace WorkspaceRepo

//go:generate mockgen -destination=mocks/mock_tx_repository.go -package=mocks github.com/piresc/flexwork/services/workspace TxRepo

// WorkspaceRepo persists companies, invitees and role memberships
type WorkspaceRepo interface {
	GetActiveMemberships(ctx context.Context, userID string) ([]models.Membership, error)
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)

	// WithinTx runs fn in one transaction, committing when fn returns nil
	WithinTx(ctx context.Context, fn func(tx TxRepo) error) error

	// used by the notification job outside any request transaction
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateInvitedUser(ctx context.Context, user *models.User) error
	AttachMembership(ctx context.Context, userID, companyID string, role models.Role, at time.Time) (string, error)
	GetMembership(ctx context.Context, membershipID string, role models.Role) (*models.Membership, error)
}

// TxRepo is the view of the store inside WithinTx
type TxRepo interface {
	// Savepoint runs fn as a nested unit; an error from fn rolls back only fn's writes
	Savepoint(ctx context.Context, fn func() error) error

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindMembership also returns soft-deleted memberships
	FindMembership(ctx context.Context, userID, companyID string, role models.Role) (*models.Membership, error)
	InsertMembership(ctx context.Context, membership *models.Membership) error
	ReactivateMembership(ctx context.Context, role models.Role, membershipID string, at time.Time) error
}
