package dto

import (
	"time"

	"agriformation_backend/internals/features/volunteers/calls/model"
)

// ============================
// Response DTOs
// ============================

type DesignImageDTO struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type CallApplicationDTO struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

type CallDTO struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Requirements       string               `json:"requirements,omitempty"`
	DesignImage        *DesignImageDTO      `json:"design_image,omitempty"`
	EventDate          time.Time            `json:"event_date"`
	Deadline           time.Time            `json:"deadline"`
	Location           string               `json:"location"`
	NumberOfVolunteers int                  `json:"number_of_volunteers"`
	Category           string               `json:"category"`
	Status             string               `json:"status"`
	EffectiveStatus    string               `json:"effective_status"`
	IsPublished        bool                 `json:"is_published"`
	Applications       []CallApplicationDTO `json:"applications,omitempty"`
	ApplicationCount   int                  `json:"application_count"`
	ViewCount          int                  `json:"view_count"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// ============================
// Request DTOs
// ============================

type CreateCallRequest struct {
	Title              string    `json:"title" validate:"required,min=3,max=150"`
	Description        string    `json:"description" validate:"required"`
	Requirements       string    `json:"requirements" validate:"omitempty,max=5000"`
	EventDate          time.Time `json:"event_date" validate:"required"`
	Deadline           time.Time `json:"deadline" validate:"required"`
	Location           string    `json:"location" validate:"required,max=200"`
	NumberOfVolunteers int       `json:"number_of_volunteers" validate:"required,min=1"`
	Category           string    `json:"category" validate:"required,oneof=farm_work event_support community_outreach training workshop other"`
}

type UpdateCallRequest struct {
	Title              *string    `json:"title" validate:"omitempty,min=3,max=150"`
	Description        *string    `json:"description" validate:"omitempty"`
	Requirements       *string    `json:"requirements" validate:"omitempty,max=5000"`
	EventDate          *time.Time `json:"event_date"`
	Deadline           *time.Time `json:"deadline"`
	Location           *string    `json:"location" validate:"omitempty,max=200"`
	NumberOfVolunteers *int       `json:"number_of_volunteers" validate:"omitempty,min=1"`
	Category           *string    `json:"category" validate:"omitempty,oneof=farm_work event_support community_outreach training workshop other"`
}

type UpdateCallStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft open closed cancelled"`
}

type PublishCallRequest struct {
	IsPublished bool `json:"is_published"`
}

type UpdateCallApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type CallApplyRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=30"`
	Message     string `json:"message" validate:"omitempty,max=3000"`
}

// ============================
// Converters
// ============================

func ToCallApplicationDTO(m model.CallApplicationModel) CallApplicationDTO {
	return CallApplicationDTO{
		ID:          m.CallApplicationID.String(),
		FullName:    m.CallApplicationFullName,
		Email:       m.CallApplicationEmail,
		PhoneNumber: m.CallApplicationPhoneNumber,
		Message:     m.CallApplicationMessage,
		Status:      m.CallApplicationStatus,
		AppliedAt:   m.CallApplicationAppliedAt,
	}
}

// ToCallDTO renders a call as seen at the given instant. Applications are
// included only when withApplications is set (admin views).
func ToCallDTO(m model.CallModel, now time.Time, withApplications bool) CallDTO {
	var designImage *DesignImageDTO
	if m.CallDesignImageURL != nil && m.CallDesignImageKey != nil {
		designImage = &DesignImageDTO{URL: *m.CallDesignImageURL, PublicID: *m.CallDesignImageKey}
	}

	out := CallDTO{
		ID:                 m.CallID.String(),
		Title:              m.CallTitle,
		Description:        m.CallDescription,
		Requirements:       m.CallRequirements,
		DesignImage:        designImage,
		EventDate:          m.CallEventDate,
		Deadline:           m.CallDeadline,
		Location:           m.CallLocation,
		NumberOfVolunteers: m.CallVolunteersNeeded,
		Category:           m.CallCategory,
		Status:             m.CallStatus,
		EffectiveStatus:    model.EffectiveStatus(m.CallStatus, m.CallDeadline, now),
		IsPublished:        m.CallIsPublished,
		ApplicationCount:   len(m.Applications),
		ViewCount:          m.CallViewCount,
		CreatedAt:          m.CallCreatedAt,
		UpdatedAt:          m.CallUpdatedAt,
	}

	if withApplications {
		out.Applications = make([]CallApplicationDTO, 0, len(m.Applications))
		for _, a := range m.Applications {
			out.Applications = append(out.Applications, ToCallApplicationDTO(a))
		}
	}
	return out
}
