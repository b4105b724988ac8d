package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newBreaker(clock *fakeClock) *CircuitBreaker {
	cfg := DefaultConfig("resend")
	cfg.FailureThreshold = 2
	cfg.Timeout = time.Minute
	cfg.Now = clock.Now
	return New(cfg, logger.NewNop())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newBreaker(clock)
	boom := errors.New("provider down")
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, func(context.Context) error { return boom }), boom)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, func(context.Context) error { return boom }), boom)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newBreaker(clock)
	boom := errors.New("provider down")
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return boom })
	_ = cb.Execute(ctx, func(context.Context) error { return boom })
	assert.Equal(t, StateOpen, cb.State())

	clock.now = clock.now.Add(2 * time.Minute)

	assert.NoError(t, cb.Execute(ctx, func(context.Context) error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newBreaker(clock)
	boom := errors.New("provider down")
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return boom })
	_ = cb.Execute(ctx, func(context.Context) error { return boom })
	clock.now = clock.now.Add(2 * time.Minute)

	assert.ErrorIs(t, cb.Execute(ctx, func(context.Context) error { return boom }), boom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cfg := DefaultConfig("resend")
	cfg.FailureThreshold = 1
	cfg.Now = clock.Now
	notCounted := errors.New("bad recipient")
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, notCounted) }
	cb := New(cfg, logger.NewNop())

	_ = cb.Execute(context.Background(), func(context.Context) error { return notCounted })

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, "resend", cb.Name())
}
