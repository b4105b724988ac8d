package models

import (
	"time"
)

// OTPStatus is the rate-limit state of a user's OTP verification
type OTPStatus int

const (
	// OTPUnlocked means no failures in the current window
	OTPUnlocked OTPStatus = iota
	// OTPAccumulating means some failures, still below the maximum
	OTPAccumulating
	// OTPThrottled means the maximum was reached inside the window
	OTPThrottled
)

func (s OTPStatus) String() string {
	switch s {
	case OTPUnlocked:
		return "unlocked"
	case OTPAccumulating:
		return "accumulating"
	case OTPThrottled:
		return "throttled"
	default:
		return "unknown"
	}
}

// OTPState holds the OTP columns of a user row. FailedAttempts > 0 iff FirstFailedAt != nil;
// mutate it only through Reset and RecordFailure.
type OTPState struct {
	UserID         string     `db:"id"`
	SecretKey      string     `db:"otp_secret_key"`
	FailedAttempts int        `db:"otp_failed_attempts_count"`
	FirstFailedAt  *time.Time `db:"otp_first_failed_at"`

	dirty bool
}

// Evaluate returns the current status. A streak older than window is stale and is reset
// in place before the status is computed.
func (s *OTPState) Evaluate(now time.Time, maxAttempts int, window time.Duration) OTPStatus {
	if s.FirstFailedAt == nil {
		return OTPUnlocked
	}
	if now.Sub(*s.FirstFailedAt) > window {
		s.Reset()
		return OTPUnlocked
	}
	if s.FailedAttempts >= maxAttempts {
		return OTPThrottled
	}
	if s.FailedAttempts > 0 {
		return OTPAccumulating
	}
	return OTPUnlocked
}

// Reset clears the failure streak
func (s *OTPState) Reset() {
	if s.FailedAttempts == 0 && s.FirstFailedAt == nil {
		return
	}
	s.FailedAttempts = 0
	s.FirstFailedAt = nil
	s.dirty = true
}

// RecordFailure counts a failed verification, opening a new window on the first failure
func (s *OTPState) RecordFailure(now time.Time) {
	if s.FirstFailedAt == nil {
		started := now
		s.FirstFailedAt = &started
	}
	s.FailedAttempts++
	s.dirty = true
}

// RetryAfter is how long until the current window expires
func (s *OTPState) RetryAfter(now time.Time, window time.Duration) time.Duration {
	if s.FirstFailedAt == nil {
		return 0
	}
	remaining := s.FirstFailedAt.Add(window).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Dirty reports whether the state changed since it was loaded
func (s *OTPState) Dirty() bool {
	return s.dirty
}

// SendCodeRequest represents a request for a login or signup code
type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,len=6"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}
