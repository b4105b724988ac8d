package gateway

import (
	"context"

	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/retry"
	"github.com/piresc/flexwork/services/workspace"
)

// Publisher is the slice of the JetStream producer the gateway needs
type Publisher interface {
	Publish(ctx context.Context, subject string, message interface{}, msgID string) error
}

// WorkspaceGW queues invitation batches on JetStream, sends invitation email and
// tracks delivered notifications in Redis
type WorkspaceGW struct {
	publisher Publisher
	sender    mailer.Sender
	redis     *database.RedisClient
	retrier   *retry.Retrier
}

// NewWorkspaceGW creates a new workspace gateway. publisher may be nil in processes that only consume.
func NewWorkspaceGW(publisher Publisher, sender mailer.Sender, redisClient *database.RedisClient) workspace.WorkspaceGW {
	return &WorkspaceGW{
		publisher: publisher,
		sender:    sender,
		redis:     redisClient,
		retrier:   retry.New(retry.DefaultConfig(), logger.GetGlobalLogger()),
	}
}
