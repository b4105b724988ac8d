package usecase

import (
	"time"

	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/pkg/otp"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/workspace"
)

// WorkspaceUC implements workspace.WorkspaceUC
type WorkspaceUC struct {
	repo     workspace.WorkspaceRepo
	gw       workspace.WorkspaceGW
	cfg      *models.Config
	validate *utils.RequestValidator
	codes    *otp.Generator
	now      func() time.Time
	newID    func() string
}

// NewWorkspaceUC creates a new workspace usecase instance
func NewWorkspaceUC(
	repo workspace.WorkspaceRepo,
	gw workspace.WorkspaceGW,
	cfg *models.Config,
) *WorkspaceUC {
	return &WorkspaceUC{
		repo:     repo,
		gw:       gw,
		cfg:      cfg,
		validate: utils.NewRequestValidator(),
		codes:    otp.NewGenerator(cfg.OTP.Issuer, cfg.OTP.Period, cfg.OTP.Drift),
		now:      time.Now,
		newID:    newUUID,
	}
}
