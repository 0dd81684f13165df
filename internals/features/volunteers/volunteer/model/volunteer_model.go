package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Volunteer statuses. Unlike applications this machine is not terminal:
// an admin may move a volunteer between any of the four states, because the
// status tracks an ongoing relationship that can be paused and resumed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusOnHold   = "on-hold"
)

// VolunteerModel is the tracked profile of an admitted (or pending) volunteer,
// distinct from the one-time admission application.
type VolunteerModel struct {
	VolunteerID            uuid.UUID      `gorm:"column:volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volunteer_id"`
	VolunteerUserID        uuid.UUID      `gorm:"column:volunteer_user_id;type:uuid;uniqueIndex;not null" json:"volunteer_user_id"`
	VolunteerPreferredRole string         `gorm:"column:volunteer_preferred_role;size:100" json:"volunteer_preferred_role"`
	VolunteerAbout         string         `gorm:"column:volunteer_about;type:text" json:"volunteer_about"`
	VolunteerSkills        pq.StringArray `gorm:"column:volunteer_skills;type:text[]" json:"volunteer_skills,omitempty"`
	VolunteerAvailability  *string        `gorm:"column:volunteer_availability;size:100" json:"volunteer_availability,omitempty"`
	VolunteerLocationState *string        `gorm:"column:volunteer_location_state;size:100" json:"volunteer_location_state,omitempty"`
	VolunteerLocationLGA   *string        `gorm:"column:volunteer_location_lga;size:100" json:"volunteer_location_lga,omitempty"`
	VolunteerStatus        string         `gorm:"column:volunteer_status;type:varchar(20);not null;default:'pending'" json:"volunteer_status"`
	VolunteerReviewedBy    *uuid.UUID     `gorm:"column:volunteer_reviewed_by;type:uuid" json:"volunteer_reviewed_by,omitempty"`
	VolunteerReviewedAt    *time.Time     `gorm:"column:volunteer_reviewed_at" json:"volunteer_reviewed_at,omitempty"`
	VolunteerReviewNotes   *string        `gorm:"column:volunteer_review_notes;type:text" json:"volunteer_review_notes,omitempty"`
	VolunteerHours         int            `gorm:"column:volunteer_hours;not null;default:0" json:"volunteer_hours"`
	VolunteerCertificates  datatypes.JSON `gorm:"column:volunteer_certificates;type:jsonb" json:"volunteer_certificates,omitempty"`
	VolunteerCreatedAt     time.Time      `gorm:"column:volunteer_created_at;autoCreateTime" json:"volunteer_created_at"`
	VolunteerUpdatedAt     time.Time      `gorm:"column:volunteer_updated_at;autoUpdateTime" json:"volunteer_updated_at"`

	Programs []ProgramModel `gorm:"foreignKey:ProgramVolunteerID;references:VolunteerID" json:"programs,omitempty"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusOnHold:
		return true
	}
	return false
}

// allowedTransitions makes the "any state to any state" rule explicit rather
// than implicit, so tightening it later is a data change, not a code change.
var allowedTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected, StatusOnHold},
	StatusApproved: {StatusPending, StatusRejected, StatusOnHold},
	StatusRejected: {StatusPending, StatusApproved, StatusOnHold},
	StatusOnHold:   {StatusPending, StatusApproved, StatusRejected},
}

func CanTransition(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ValidateHoursUpdate enforces that contributed hours never decrease.
func ValidateHoursUpdate(current, next int) error {
	if next < current {
		return fmt.Errorf("hours contributed cannot decrease (%d -> %d)", current, next)
	}
	return nil
}
