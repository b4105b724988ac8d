package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtpkg "github.com/piresc/flexwork/internal/pkg/jwt"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	// Arrange
	env := newTestEnv(t, testConfig())

	// Act
	resp, err := env.uc.Login(context.Background(), "  ADA@flexwork.test ", env.validCode(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, env.user.ID, resp.UserID)
	assert.Equal(t, env.user.Email, resp.Email)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, env.user.ID, claims.UserID)
}

func TestLogin_ConfirmsInvitedUser(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.repo.users[env.user.ID].ConfirmedAt = nil

	_, err := env.uc.Login(context.Background(), env.user.Email, env.validCode(t))

	require.NoError(t, err)
	require.NotNil(t, env.repo.users[env.user.ID].ConfirmedAt)
	assert.Equal(t, baseTime, *env.repo.users[env.user.ID].ConfirmedAt)
}

func TestLogin_Failures(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		failures  int
		useValid  bool
		wantErr   error
		wantRetry time.Duration
	}{
		{name: "unknown email", email: "nobody@flexwork.test", wantErr: auth.ErrInvalidCode},
		{name: "wrong code", failures: 0, wantErr: auth.ErrInvalidCode},
		{name: "wrong code reaching the limit", failures: 4, wantErr: auth.ErrInvalidCode},
		{name: "throttled with valid code", failures: 5, useValid: true, wantErr: auth.ErrRateLimited, wantRetry: 9 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv(t, testConfig())
			if tc.failures > 0 {
				first := baseTime.Add(-time.Minute)
				env.repo.setFailures(env.user.ID, tc.failures, &first)
			}
			email := env.user.Email
			if tc.email != "" {
				email = tc.email
			}
			code := env.wrongCode(t)
			if tc.useValid {
				code = env.validCode(t)
			}

			// Act
			resp, err := env.uc.Login(context.Background(), email, code)

			// Assert
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantRetry > 0 {
				var rlErr *auth.RateLimitError
				require.True(t, errors.As(err, &rlErr))
				assert.Equal(t, tc.wantRetry, rlErr.RetryAfter)
			}
		})
	}
}

func TestLogin_LastWrongCodeReportedBeforeThrottle(t *testing.T) {
	// Arrange
	env := newTestEnv(t, testConfig())
	first := baseTime.Add(-time.Minute)
	env.repo.setFailures(env.user.ID, 4, &first)

	// Act
	_, lastErr := env.uc.Login(context.Background(), env.user.Email, env.wrongCode(t))
	_, nextErr := env.uc.Login(context.Background(), env.user.Email, env.validCode(t))

	// Assert
	assert.ErrorIs(t, lastErr, auth.ErrInvalidCode)
	assert.NotErrorIs(t, lastErr, auth.ErrRateLimited)

	var rlErr *auth.RateLimitError
	require.True(t, errors.As(nextErr, &rlErr))
	assert.Equal(t, 9*time.Minute, rlErr.RetryAfter)
	assert.Equal(t, 5, env.repo.state(env.user.ID).FailedAttempts)
}

func TestRequestLoginCode_SendsValidCode(t *testing.T) {
	// Arrange
	env := newTestEnv(t, testConfig())
	var sent mailer.CodeEmail

	env.gw.EXPECT().
		AcquireSendCooldown(gomock.Any(), env.user.ID, time.Minute).
		Return(true, time.Duration(0), nil)
	env.gw.EXPECT().
		SendCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email mailer.CodeEmail) error {
			sent = email
			return nil
		})

	// Act
	err := env.uc.RequestLoginCode(context.Background(), env.user.Email)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, env.user.Email, sent.To)
	assert.Equal(t, mailer.PurposeLogin, sent.Purpose)
	assert.Equal(t, 10, sent.Minutes)
	assert.Equal(t, env.validCode(t), sent.Code)
}

func TestRequestLoginCode_Refusals(t *testing.T) {
	testCases := []struct {
		name      string
		setup     func(env *testEnv)
		email     string
		wantErr   error
		wantRetry time.Duration
	}{
		{
			name:    "unknown user",
			setup:   func(*testEnv) {},
			email:   "nobody@flexwork.test",
			wantErr: models.ErrUserNotFound,
		},
		{
			name: "throttled user",
			setup: func(env *testEnv) {
				first := baseTime.Add(-2 * time.Minute)
				env.repo.setFailures(env.user.ID, 5, &first)
			},
			wantErr:   auth.ErrRateLimited,
			wantRetry: 8 * time.Minute,
		},
		{
			name: "inside resend cooldown",
			setup: func(env *testEnv) {
				env.gw.EXPECT().
					AcquireSendCooldown(gomock.Any(), env.user.ID, time.Minute).
					Return(false, 42*time.Second, nil)
			},
			wantErr:   auth.ErrRateLimited,
			wantRetry: 42 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig())
			tc.setup(env)
			email := env.user.Email
			if tc.email != "" {
				email = tc.email
			}

			err := env.uc.RequestLoginCode(context.Background(), email)

			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantRetry > 0 {
				var rlErr *auth.RateLimitError
				require.True(t, errors.As(err, &rlErr))
				assert.Equal(t, tc.wantRetry, rlErr.RetryAfter)
			}
		})
	}
}

func TestRequestLoginCode_GeneratesMissingSecret(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.repo.users[env.user.ID].OTPSecretKey = ""
	env.repo.otp[env.user.ID] = models.OTPState{UserID: env.user.ID}

	env.gw.EXPECT().AcquireSendCooldown(gomock.Any(), env.user.ID, time.Minute).Return(true, time.Duration(0), nil)
	env.gw.EXPECT().SendCode(gomock.Any(), gomock.Any()).Return(nil)

	err := env.uc.RequestLoginCode(context.Background(), env.user.Email)

	require.NoError(t, err)
	assert.NotEmpty(t, env.repo.users[env.user.ID].OTPSecretKey)
	assert.Equal(t, env.repo.users[env.user.ID].OTPSecretKey, env.repo.state(env.user.ID).SecretKey)
}

func TestRequestLoginCode_MailFailure(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.gw.EXPECT().AcquireSendCooldown(gomock.Any(), env.user.ID, time.Minute).Return(true, time.Duration(0), nil)
	env.gw.EXPECT().SendCode(gomock.Any(), gomock.Any()).Return(errors.New("provider down"))

	err := env.uc.RequestLoginCode(context.Background(), env.user.Email)

	assert.ErrorContains(t, err, "failed to send otp email")
}
