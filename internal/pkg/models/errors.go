package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipExists   = errors.New("membership already exists")
	ErrUserExists         = errors.New("user already exists")
	ErrLockTimeout        = errors.New("timed out waiting for row lock")
)

// AuthorizationError is returned when the actor may not manage some requested roles
type AuthorizationError struct {
	DisallowedRoles []Role
}

func (e *AuthorizationError) Error() string {
	names := make([]string, 0, len(e.DisallowedRoles))
	for _, r := range e.DisallowedRoles {
		names = append(names, string(r))
	}
	return fmt.Sprintf("not allowed to manage roles: %s", strings.Join(names, ", "))
}

// ValidationError is a client input problem that is never retried
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
