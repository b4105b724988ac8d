package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/flexwork/internal/pkg/models"
)

// AuthRepo implements auth.AuthRepo on Postgres
type AuthRepo struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		db:          db,
		lockTimeout: cfg.Database.LockTimeout,
	}
}
