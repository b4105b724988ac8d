package auth

import (
	"context"
	"time"

	"github.com/piresc/flexwork/internal/pkg/mailer"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/flexwork/services/auth AuthGW

// AuthGW defines the auth gateways interface
type AuthGW interface {
	// Mail Gateway
	SendCode(ctx context.Context, email mailer.CodeEmail) error

	// Redis Gateway
	// AcquireSendCooldown returns false and the remaining wait when a code was sent to userID recently
	AcquireSendCooldown(ctx context.Context, userID string, ttl time.Duration) (bool, time.Duration, error)
}
