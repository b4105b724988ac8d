package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RateLimitMonotonicity(t *testing.T) {
	// Arrange
	env := newTestEnv(t, testConfig())
	ctx := context.Background()
	wrong := env.wrongCode(t)

	// Act & Assert
	for k := 1; k < 5; k++ {
		ok, err := env.uc.Verify(ctx, env.user.ID, wrong)
		require.NoError(t, err)
		assert.False(t, ok)

		limited, err := env.uc.IsRateLimited(ctx, env.user.ID)
		require.NoError(t, err)
		assert.False(t, limited, "limited after %d failures", k)
	}

	ok, err := env.uc.Verify(ctx, env.user.ID, wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	limited, err := env.uc.IsRateLimited(ctx, env.user.ID)
	require.NoError(t, err)
	assert.True(t, limited)

	// a correct code while throttled is refused and leaves the counters alone
	ok, err = env.uc.Verify(ctx, env.user.ID, env.validCode(t))
	require.NoError(t, err)
	assert.False(t, ok)

	state := env.repo.state(env.user.ID)
	assert.Equal(t, 5, state.FailedAttempts)
	require.NotNil(t, state.FirstFailedAt)
	assert.Equal(t, baseTime, *state.FirstFailedAt)
}

func TestVerify_WindowExpiry(t *testing.T) {
	testCases := []struct {
		name         string
		useValidCode bool
		wantValid    bool
		wantCount    int
		wantStamp    bool
	}{
		{name: "wrong code starts a new streak", useValidCode: false, wantValid: false, wantCount: 1, wantStamp: true},
		{name: "valid code succeeds", useValidCode: true, wantValid: true, wantCount: 0, wantStamp: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv(t, testConfig())
			stale := baseTime.Add(-11 * time.Minute)
			env.repo.setFailures(env.user.ID, 5, &stale)

			code := env.wrongCode(t)
			if tc.useValidCode {
				code = env.validCode(t)
			}

			// Act
			ok, err := env.uc.Verify(context.Background(), env.user.ID, code)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, ok)

			state := env.repo.state(env.user.ID)
			assert.Equal(t, tc.wantCount, state.FailedAttempts)
			if tc.wantStamp {
				require.NotNil(t, state.FirstFailedAt)
				assert.Equal(t, baseTime, *state.FirstFailedAt)
			} else {
				assert.Nil(t, state.FirstFailedAt)
			}
		})
	}
}

func TestIsRateLimited_LazyReset(t *testing.T) {
	env := newTestEnv(t, testConfig())
	stale := baseTime.Add(-10*time.Minute - time.Second)
	env.repo.setFailures(env.user.ID, 5, &stale)

	limited, err := env.uc.IsRateLimited(context.Background(), env.user.ID)

	require.NoError(t, err)
	assert.False(t, limited)
	state := env.repo.state(env.user.ID)
	assert.Zero(t, state.FailedAttempts)
	assert.Nil(t, state.FirstFailedAt)
}

func TestIsRateLimited_WindowBoundary(t *testing.T) {
	env := newTestEnv(t, testConfig())
	first := baseTime.Add(-10 * time.Minute)
	env.repo.setFailures(env.user.ID, 5, &first)

	limited, err := env.uc.IsRateLimited(context.Background(), env.user.ID)

	// exactly window old is still inside it
	require.NoError(t, err)
	assert.True(t, limited)
}

func TestVerify_SuccessResetsState(t *testing.T) {
	for _, failures := range []int{0, 1, 4} {
		env := newTestEnv(t, testConfig())
		if failures > 0 {
			first := baseTime.Add(-time.Minute)
			env.repo.setFailures(env.user.ID, failures, &first)
		}

		ok, err := env.uc.Verify(context.Background(), env.user.ID, env.validCode(t))

		require.NoError(t, err)
		assert.True(t, ok, "failures=%d", failures)
		state := env.repo.state(env.user.ID)
		assert.Zero(t, state.FailedAttempts)
		assert.Nil(t, state.FirstFailedAt)
	}
}

func TestVerify_FirstFailureStampsWindowOnce(t *testing.T) {
	env := newTestEnv(t, testConfig())
	ctx := context.Background()
	wrong := env.wrongCode(t)

	_, err := env.uc.Verify(ctx, env.user.ID, wrong)
	require.NoError(t, err)

	*env.clock = baseTime.Add(2 * time.Minute)
	_, err = env.uc.Verify(ctx, env.user.ID, wrong)
	require.NoError(t, err)

	state := env.repo.state(env.user.ID)
	assert.Equal(t, 2, state.FailedAttempts)
	require.NotNil(t, state.FirstFailedAt)
	assert.Equal(t, baseTime, *state.FirstFailedAt)
}

func TestVerify_ConcurrentFailuresAreNotLost(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.OTP.MaxAttempts = 100
	env := newTestEnv(t, cfg)
	env.repo.pause = time.Millisecond
	wrong := env.wrongCode(t)

	const attempts = 25
	var wg sync.WaitGroup

	// Act
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := env.uc.Verify(context.Background(), env.user.ID, wrong)
			assert.NoError(t, err)
			assert.False(t, ok)
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, attempts, env.repo.state(env.user.ID).FailedAttempts)
}

func TestVerify_ConcurrentAtThresholdAdmitsNoExtraAttempt(t *testing.T) {
	// Arrange
	env := newTestEnv(t, testConfig())
	env.repo.pause = time.Millisecond
	first := baseTime.Add(-time.Minute)
	env.repo.setFailures(env.user.ID, 4, &first)
	wrong := env.wrongCode(t)
	valid := env.validCode(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	// Act: one valid and several wrong codes race from failures=4
	codes := []string{wrong, wrong, valid, wrong}
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			ok, err := env.uc.Verify(context.Background(), env.user.ID, code)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(code)
	}
	wg.Wait()

	// Assert: the count never passes the threshold and a success only happens before it is reached
	state := env.repo.state(env.user.ID)
	assert.LessOrEqual(t, state.FailedAttempts, 5)
	if successes == 1 {
		assert.Less(t, state.FailedAttempts, 5)
	} else {
		assert.Equal(t, 5, state.FailedAttempts)
	}
}

func TestVerify_DifferentUsersDoNotContend(t *testing.T) {
	env := newTestEnv(t, testConfig())
	other := &models.User{ID: "0b1f4d2a-7c3e-4a59-8e6d-5f2a1c9b3d70", Email: "grace@flexwork.test", OTPSecretKey: env.user.OTPSecretKey}
	env.repo.add(other)

	wrong := env.wrongCode(t)

	unlock := env.uc.locks.Lock(env.user.ID)
	defer unlock()

	done := make(chan struct{})
	go func() {
		_, _ = env.uc.Verify(context.Background(), other.ID, wrong)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("verification for another user blocked on a held lock")
	}
}

func TestVerify_StorageErrorPropagates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	testCases := []struct {
		name    string
		repoErr error
	}{
		{name: "lock timeout", repoErr: models.ErrLockTimeout},
		{name: "connection lost", repoErr: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo.EXPECT().
				WithOTPLock(gomock.Any(), "u-1", gomock.Any()).
				Return(tc.repoErr)

			// Act
			ok, err := uc.Verify(context.Background(), "u-1", "123456")

			// Assert
			assert.False(t, ok)
			assert.ErrorIs(t, err, tc.repoErr)
		})
	}
}

func TestIsRateLimited_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	uc := NewAuthUC(mockRepo, mocks.NewMockAuthGW(ctrl), testConfig())

	mockRepo.EXPECT().WithOTPLock(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("db down"))

	limited, err := uc.IsRateLimited(context.Background(), "u-1")

	assert.False(t, limited)
	assert.Error(t, err)
}
