package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCode = errors.New("invalid email or code")
	ErrRateLimited = errors.New("too many attempts")
	ErrEmailTaken  = errors.New("an account with this email already exists")
)

// RateLimitError is ErrRateLimited with a hint of when to try again
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s, retry in %s", ErrRateLimited, e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
