package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/flexwork/internal/pkg/constants"
	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/services/auth"
)

// AuthGW delivers codes by email and tracks resend cooldowns in Redis
type AuthGW struct {
	sender mailer.Sender
	redis  *database.RedisClient
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(sender mailer.Sender, redisClient *database.RedisClient) auth.AuthGW {
	return &AuthGW{
		sender: sender,
		redis:  redisClient,
	}
}

// SendCode renders and sends a one-time code email
func (g *AuthGW) SendCode(ctx context.Context, email mailer.CodeEmail) error {
	msg, err := mailer.RenderCode(email)
	if err != nil {
		return fmt.Errorf("failed to render code email: %w", err)
	}
	return g.sender.Send(ctx, msg)
}

// AcquireSendCooldown claims the cooldown slot for userID. When the slot is taken it
// returns false with the remaining wait.
func (g *AuthGW) AcquireSendCooldown(ctx context.Context, userID string, ttl time.Duration) (bool, time.Duration, error) {
	if ttl <= 0 {
		return true, 0, nil
	}

	key := fmt.Sprintf(constants.KeyOTPCooldown, userID)
	ok, err := g.redis.SetNX(ctx, key, time.Now().Unix(), ttl)
	if err != nil {
		return false, 0, fmt.Errorf("failed to set cooldown: %w", err)
	}
	if ok {
		return true, 0, nil
	}

	remaining, err := g.redis.TTL(ctx, key)
	if err != nil {
		return false, 0, fmt.Errorf("failed to read cooldown: %w", err)
	}
	if remaining < 0 {
		remaining = ttl
	}
	return false, remaining, nil
}
