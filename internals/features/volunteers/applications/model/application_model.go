package model

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses. pending is the entry state; accepted and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ApplicationModel is a general role-seeking volunteer application,
// distinct from an application against a specific volunteer call.
type ApplicationModel struct {
	ApplicationID            uuid.UUID  `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`
	ApplicationFullName      string     `gorm:"column:application_full_name;size:100;not null" json:"application_full_name"`
	ApplicationEmail         string     `gorm:"column:application_email;size:255;not null" json:"application_email"`
	ApplicationPreferredRole string     `gorm:"column:application_preferred_role;size:100;not null" json:"application_preferred_role"`
	ApplicationAbout         string     `gorm:"column:application_about;type:text;not null" json:"application_about"`
	ApplicationStatus        string     `gorm:"column:application_status;type:varchar(20);not null;default:'pending'" json:"application_status"`
	ApplicationProcessedBy   *uuid.UUID `gorm:"column:application_processed_by;type:uuid" json:"application_processed_by,omitempty"`
	ApplicationProcessedAt   *time.Time `gorm:"column:application_processed_at" json:"application_processed_at,omitempty"`
	ApplicationNotes         *string    `gorm:"column:application_notes;type:text" json:"application_notes,omitempty"`
	ApplicationCreatedAt     time.Time  `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt     time.Time  `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string {
	return "volunteer_applications"
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func IsTerminal(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// IsReviewDecision reports whether s is a status the review action may set.
func IsReviewDecision(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition encodes the application state machine:
// pending may move to reviewed, accepted or rejected; reviewed may still be
// decided either way; accepted and rejected are final.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) || from == to {
		return false
	}
	switch from {
	case StatusPending:
		return to == StatusReviewed || to == StatusAccepted || to == StatusRejected
	case StatusReviewed:
		return to == StatusAccepted || to == StatusRejected
	}
	return false
}
