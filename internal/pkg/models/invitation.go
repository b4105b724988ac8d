package models

import (
	"time"
)

// MemberSpec is one {email, role} pair of a batch invitation
type MemberSpec struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  Role   `json:"role" validate:"required"`
}

// InviteMembersRequest is the body of POST /workspace_members
type InviteMembersRequest struct {
	CompanyID string       `json:"company_id" validate:"required,uuid"`
	Members   []MemberSpec `json:"members" validate:"required,min=1,max=100"`
}

// MemberOutcomeStatus is the terminal state of a single invitee row
type MemberOutcomeStatus string

const (
	OutcomePending MemberOutcomeStatus = "pending"
	OutcomeCreated MemberOutcomeStatus = "created"
	OutcomeUpdated MemberOutcomeStatus = "updated"
	OutcomeSkipped MemberOutcomeStatus = "skipped"
	OutcomeErrored MemberOutcomeStatus = "errored"
)

// MemberOutcome records what happened to one input row
type MemberOutcome struct {
	Email  string              `json:"email"`
	Role   Role                `json:"role"`
	Status MemberOutcomeStatus `json:"status"`
	Error  string              `json:"error,omitempty"`
}

// InviteSummary is the result of a batch invitation. An existing user gaining a
// role counts toward UpdatedCount; only brand new accounts count as invited.
type InviteSummary struct {
	InvitedCount   int             `json:"invited_count"`
	UpdatedCount   int             `json:"updated_count"`
	TotalProcessed int             `json:"total_processed"`
	Errors         []string        `json:"errors,omitempty"`
	Results        []MemberOutcome `json:"-"`
}

// NotificationType tags an invitation notification payload
type NotificationType string

const (
	NotificationNewUser      NotificationType = "new_user_invitation"
	NotificationExistingUser NotificationType = "existing_user_invitation"
)

// InvitationNotification is one deferred invitation email
type InvitationNotification struct {
	Type         NotificationType `json:"type"`
	Email        string           `json:"email"`
	Role         Role             `json:"role"`
	CompanyID    string           `json:"company_id"`
	InviterID    string           `json:"inviter_id"`
	MembershipID string           `json:"membership_id,omitempty"`
}

// InvitationBatch is the job message carrying every notification of one request
type InvitationBatch struct {
	ID            string                   `json:"id"`
	CompanyID     string                   `json:"company_id"`
	InviterID     string                   `json:"inviter_id"`
	Notifications []InvitationNotification `json:"notifications"`
	EnqueuedAt    time.Time                `json:"enqueued_at"`
}

// InviteMembersResponse is the body of a POST /workspace_members reply. Errors is only
// set when some rows failed.
type InviteMembersResponse struct {
	Success        bool     `json:"success"`
	InvitedCount   int      `json:"invited_count"`
	UpdatedCount   int      `json:"updated_count"`
	TotalProcessed int      `json:"total_processed,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}
