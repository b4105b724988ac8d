package models

import (
	"time"
)

// User represents an account that can sign in with an email OTP
type User struct {
	ID                  string     `json:"id" db:"id"`
	Email               string     `json:"email" db:"email" validate:"required,email,max=255"`
	LegalName           string     `json:"legal_name,omitempty" db:"legal_name"`
	OTPSecretKey        string     `json:"-" db:"otp_secret_key"`
	ConfirmedAt         *time.Time `json:"confirmed_at,omitempty" db:"confirmed_at"`
	InvitationToken     *string    `json:"-" db:"invitation_token"`
	InvitedByID         *string    `json:"invited_by_id,omitempty" db:"invited_by_id"`
	InvitationCreatedAt *time.Time `json:"invitation_created_at,omitempty" db:"invitation_created_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// IsConfirmed reports whether the user finished signup or accepted an invitation
func (u *User) IsConfirmed() bool {
	return u.ConfirmedAt != nil
}

// Company is a tenant workspace
type Company struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Role names a company role-membership kind
type Role string

const (
	RoleAdministrator Role = "admin"
	RoleLawyer        Role = "lawyer"
	RoleWorker        Role = "worker"
	RoleInvestor      Role = "investor"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleLawyer, RoleWorker, RoleInvestor:
		return true
	}
	return false
}

// Membership is a join record granting a user a role within one company
type Membership struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	CompanyID string     `json:"company_id" db:"company_id"`
	Role      Role       `json:"role" db:"role"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Active reports whether the membership has not been removed
func (m *Membership) Active() bool {
	return m.DeletedAt == nil
}

// Actor is the authenticated user performing a request
type Actor struct {
	UserID      string
	Email       string
	Memberships []Membership
}
