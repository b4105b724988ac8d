package auth

import (
	"context"
	"time"

	"github.com/piresc/flexwork/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/flexwork/services/auth AuthRepo

// AuthRepo persists users and their OTP state
type AuthRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	ConfirmUser(ctx context.Context, userID string, at time.Time) error
	// EnsureOTPSecret stores secret unless the user already has one and returns the stored secret
	EnsureOTPSecret(ctx context.Context, userID, secret string) (string, error)

	// WithOTPLock runs fn with the user's OTP columns locked for update and
	// persists them afterwards when fn changed them
	WithOTPLock(ctx context.Context, userID string, fn func(state *models.OTPState) error) error
}
