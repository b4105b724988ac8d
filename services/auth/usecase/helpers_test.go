package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/services/auth/mocks"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Name: "flexwork", Environment: "test"},
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "flexwork"},
		OTP: models.OTPConfig{
			Issuer:          "Flexwork",
			MaxAttempts:     5,
			RateLimitWindow: 10 * time.Minute,
			Drift:           10 * time.Minute,
			Period:          30 * time.Second,
			ResendCooldown:  time.Minute,
		},
	}
}

// memoryRepo keeps users in memory. WithOTPLock deliberately does not lock, so any
// serialisation observed in tests comes from the usecase.
type memoryRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	otp   map[string]models.OTPState
	// pause widens the read-modify-write gap inside WithOTPLock
	pause time.Duration
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users: make(map[string]*models.User),
		otp:   make(map[string]models.OTPState),
	}
}

func (r *memoryRepo) add(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	r.otp[user.ID] = models.OTPState{UserID: user.ID, SecretKey: user.OTPSecretKey}
}

func (r *memoryRepo) setFailures(userID string, count int, first *time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.otp[userID]
	s.FailedAttempts = count
	s.FirstFailedAt = first
	r.otp[userID] = s
}

func (r *memoryRepo) state(userID string) models.OTPState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.otp[userID]
}

func (r *memoryRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *memoryRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	for _, u := range r.users {
		if u.Email == user.Email {
			r.mu.Unlock()
			return models.ErrUserExists
		}
	}
	r.mu.Unlock()
	cp := *user
	r.add(&cp)
	return nil
}

func (r *memoryRepo) ConfirmUser(_ context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.ConfirmedAt = &at
	return nil
}

func (r *memoryRepo) EnsureOTPSecret(_ context.Context, userID, secret string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return "", models.ErrUserNotFound
	}
	if u.OTPSecretKey == "" {
		u.OTPSecretKey = secret
		s := r.otp[userID]
		s.SecretKey = secret
		r.otp[userID] = s
	}
	return u.OTPSecretKey, nil
}

func (r *memoryRepo) WithOTPLock(_ context.Context, userID string, fn func(state *models.OTPState) error) error {
	r.mu.Lock()
	stored, ok := r.otp[userID]
	r.mu.Unlock()
	if !ok {
		return models.ErrUserNotFound
	}

	state := models.OTPState{
		UserID:         stored.UserID,
		SecretKey:      stored.SecretKey,
		FailedAttempts: stored.FailedAttempts,
		FirstFailedAt:  stored.FirstFailedAt,
	}
	if err := fn(&state); err != nil {
		return err
	}

	if r.pause > 0 {
		time.Sleep(r.pause)
	}

	if state.Dirty() {
		r.mu.Lock()
		r.otp[userID] = models.OTPState{
			UserID:         state.UserID,
			SecretKey:      state.SecretKey,
			FailedAttempts: state.FailedAttempts,
			FirstFailedAt:  state.FirstFailedAt,
		}
		r.mu.Unlock()
	}
	return nil
}

type testEnv struct {
	uc    *AuthUC
	repo  *memoryRepo
	gw    *mocks.MockAuthGW
	clock *time.Time
	user  *models.User
}

func newTestEnv(t *testing.T, cfg *models.Config) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := newMemoryRepo()
	gw := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(repo, gw, cfg)

	clock := baseTime
	uc.now = func() time.Time { return clock }

	secret, err := uc.codes.GenerateSecret("ada@flexwork.test")
	require.NoError(t, err)
	confirmed := baseTime.Add(-24 * time.Hour)
	user := &models.User{
		ID:           "8d3c2f7e-41a2-4c55-9d1e-2b7f0a6c9e11",
		Email:        "ada@flexwork.test",
		OTPSecretKey: secret,
		ConfirmedAt:  &confirmed,
	}
	repo.add(user)

	return &testEnv{uc: uc, repo: repo, gw: gw, clock: &clock, user: user}
}

func (e *testEnv) validCode(t *testing.T) string {
	t.Helper()
	code, err := e.uc.codes.Code(e.user.OTPSecretKey, *e.clock)
	require.NoError(t, err)
	return code
}

func (e *testEnv) wrongCode(t *testing.T) string {
	t.Helper()
	if e.validCode(t) == "123456" {
		return "654321"
	}
	return "123456"
}
