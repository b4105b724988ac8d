package auth

import (
	"context"

	"github.com/piresc/flexwork/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/flexwork/services/auth AuthUC

// AuthUC is the email OTP authentication usecase
type AuthUC interface {
	// rate limited code verification
	Verify(ctx context.Context, userID, code string) (bool, error)
	IsRateLimited(ctx context.Context, userID string) (bool, error)

	// login
	RequestLoginCode(ctx context.Context, email string) error
	Login(ctx context.Context, email, code string) (*models.AuthResponse, error)

	// signup
	RequestSignupCode(ctx context.Context, email string) error
	CompleteSignup(ctx context.Context, email, code string) (*models.AuthResponse, error)
}
