package dto

import (
	"time"

	"github.com/google/uuid"

	"agriformation_backend/internals/features/volunteers/applications/model"
)

// ============================
// Response DTO
// ============================

type ApplicationDTO struct {
	ID            string     `json:"id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	PreferredRole string     `json:"preferred_role"`
	About         string     `json:"about_yourself"`
	Status        string     `json:"status"`
	ProcessedBy   *uuid.UUID `json:"processed_by,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CanReview     bool       `json:"can_review"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ============================
// Request DTO
// ============================

type ApplyRequest struct {
	FullName      string `json:"full_name" validate:"required,min=3,max=100"`
	Email         string `json:"email" validate:"required,email"`
	PreferredRole string `json:"preferred_role" validate:"required,max=100"`
	About         string `json:"about_yourself" validate:"required,min=10"`
}

type ReviewApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

// ============================
// Converter
// ============================

func ToApplicationDTO(m model.ApplicationModel) ApplicationDTO {
	return ApplicationDTO{
		ID:            m.ApplicationID.String(),
		FullName:      m.ApplicationFullName,
		Email:         m.ApplicationEmail,
		PreferredRole: m.ApplicationPreferredRole,
		About:         m.ApplicationAbout,
		Status:        m.ApplicationStatus,
		ProcessedBy:   m.ApplicationProcessedBy,
		ProcessedAt:   m.ApplicationProcessedAt,
		Notes:         m.ApplicationNotes,
		CanReview:     !model.IsTerminal(m.ApplicationStatus),
		CreatedAt:     m.ApplicationCreatedAt,
		UpdatedAt:     m.ApplicationUpdatedAt,
	}
}
