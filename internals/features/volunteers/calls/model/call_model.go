package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Stored call statuses. Admins may set any of these directly.
const (
	CallStatusDraft     = "draft"
	CallStatusOpen      = "open"
	CallStatusClosed    = "closed"
	CallStatusCancelled = "cancelled"

	// CallStatusExpired is display-only, produced by EffectiveStatus.
	// It is never written to call_status.
	CallStatusExpired = "expired"
)

const (
	CallApplicationPending  = "pending"
	CallApplicationAccepted = "accepted"
	CallApplicationRejected = "rejected"
)

type CallModel struct {
	CallID              uuid.UUID  `gorm:"column:call_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"call_id"`
	CallTitle           string     `gorm:"column:call_title;type:varchar(150);not null" json:"call_title"`
	CallDescription     string     `gorm:"column:call_description;type:text;not null" json:"call_description"`
	CallRequirements    string     `gorm:"column:call_requirements;type:text" json:"call_requirements"`
	CallDesignImageURL  *string    `gorm:"column:call_design_image_url;type:text" json:"call_design_image_url,omitempty"`
	CallDesignImageKey  *string    `gorm:"column:call_design_image_key;type:text" json:"call_design_image_key,omitempty"`
	CallEventDate       time.Time  `gorm:"column:call_event_date;not null" json:"call_event_date"`
	CallDeadline        time.Time  `gorm:"column:call_deadline;not null" json:"call_deadline"`
	CallLocation        string     `gorm:"column:call_location;type:varchar(200);not null" json:"call_location"`
	CallVolunteersNeeded int       `gorm:"column:call_volunteers_needed;not null;default:1" json:"call_volunteers_needed"`
	CallCategory        string     `gorm:"column:call_category;type:varchar(50);not null" json:"call_category"`
	CallStatus          string     `gorm:"column:call_status;type:varchar(20);not null;default:'draft'" json:"call_status"`
	CallIsPublished     bool       `gorm:"column:call_is_published;not null;default:false" json:"call_is_published"`
	CallViewCount       int        `gorm:"column:call_view_count;not null;default:0" json:"call_view_count"`

	Applications []CallApplicationModel `gorm:"foreignKey:CallApplicationCallID;references:CallID" json:"applications,omitempty"`

	CallCreatedAt time.Time `gorm:"column:call_created_at;autoCreateTime" json:"call_created_at"`
	CallUpdatedAt time.Time `gorm:"column:call_updated_at;autoUpdateTime" json:"call_updated_at"`
}

func (CallModel) TableName() string {
	return "volunteer_calls"
}

type CallApplicationModel struct {
	CallApplicationID          uuid.UUID `gorm:"column:call_application_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"call_application_id"`
	CallApplicationCallID      uuid.UUID `gorm:"column:call_application_call_id;type:uuid;not null;index" json:"call_application_call_id"`
	CallApplicationFullName    string    `gorm:"column:call_application_full_name;type:varchar(100);not null" json:"call_application_full_name"`
	CallApplicationEmail       string    `gorm:"column:call_application_email;type:varchar(100);not null" json:"call_application_email"`
	CallApplicationPhoneNumber string    `gorm:"column:call_application_phone_number;type:varchar(30);not null" json:"call_application_phone_number"`
	CallApplicationMessage     string    `gorm:"column:call_application_message;type:text" json:"call_application_message"`
	CallApplicationStatus      string    `gorm:"column:call_application_status;type:varchar(20);not null;default:'pending'" json:"call_application_status"`
	CallApplicationAppliedAt   time.Time `gorm:"column:call_application_applied_at;autoCreateTime" json:"call_application_applied_at"`
}

func (CallApplicationModel) TableName() string {
	return "volunteer_call_applications"
}

func IsValidCallStatus(s string) bool {
	switch s {
	case CallStatusDraft, CallStatusOpen, CallStatusClosed, CallStatusCancelled:
		return true
	}
	return false
}

// Call application statuses are reviewed repeatedly, so any state may be
// re-assigned to any other. Validity is the only rule.
func IsValidCallApplicationStatus(s string) bool {
	switch s {
	case CallApplicationPending, CallApplicationAccepted, CallApplicationRejected:
		return true
	}
	return false
}

// EffectiveStatus returns the deadline-aware display status. An open call whose
// deadline has passed reads as expired to the public while call_status stays
// "open" until an admin changes it.
func EffectiveStatus(status string, deadline, now time.Time) string {
	if status == CallStatusOpen && now.After(deadline) {
		return CallStatusExpired
	}
	return status
}

// IsAcceptingApplications gates the public apply flow: the call must be
// published and effectively open at submission time.
func (m *CallModel) IsAcceptingApplications(now time.Time) bool {
	return m.CallIsPublished && EffectiveStatus(m.CallStatus, m.CallDeadline, now) == CallStatusOpen
}

// ValidateSchedule rejects any call whose deadline is not strictly before the
// event date.
func ValidateSchedule(deadline, eventDate time.Time) error {
	if !deadline.Before(eventDate) {
		return errors.New("deadline must be before the event date")
	}
	return nil
}
