package usecase

import (
	"time"

	"github.com/piresc/flexwork/internal/pkg/keylock"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/pkg/otp"
	"github.com/piresc/flexwork/services/auth"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config
	codes    *otp.Generator
	locks    *keylock.Locker
	now      func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	codes := otp.NewGenerator(cfg.OTP.Issuer, cfg.OTP.Period, cfg.OTP.Drift)
	codes.AllowBypass = cfg.OTP.TestMode && !cfg.App.IsProduction()

	if codes.AllowBypass && otp.BypassAvailable() {
		logger.Warn("OTP bypass code is enabled", logger.String("env", cfg.App.Environment))
	}

	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		cfg:      cfg,
		codes:    codes,
		locks:    keylock.New(),
		now:      time.Now,
	}
}
