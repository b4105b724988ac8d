package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/flexwork/internal/pkg/mailer"
)

// SendInvitation renders and sends invitation instructions
func (g *WorkspaceGW) SendInvitation(ctx context.Context, email mailer.InvitationEmail) error {
	msg, err := mailer.RenderInvitation(email)
	if err != nil {
		return fmt.Errorf("failed to render invitation email: %w", err)
	}
	return g.sender.Send(ctx, msg)
}
