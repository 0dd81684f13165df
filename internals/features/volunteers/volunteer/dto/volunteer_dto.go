package dto

import (
	"time"

	"github.com/google/uuid"

	"agriformation_backend/internals/features/volunteers/volunteer/model"
)

// ============================
// Response DTOs
// ============================

type ProgramDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"program_name"`
	Role      string     `json:"role"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status"`
}

type LocationDTO struct {
	State string `json:"state"`
	LGA   string `json:"lga"`
}

type VolunteerDTO struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	PreferredRole string       `json:"preferred_role"`
	About         string       `json:"about_yourself"`
	Skills        []string     `json:"skills,omitempty"`
	Availability  *string      `json:"availability,omitempty"`
	Location      *LocationDTO `json:"location,omitempty"`
	Status        string       `json:"status"`
	ReviewedBy    *uuid.UUID   `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time   `json:"reviewed_at,omitempty"`
	ReviewNotes   *string      `json:"review_notes,omitempty"`
	Programs      []ProgramDTO `json:"assigned_programs"`
	Hours         int          `json:"hours_contributed"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ============================
// Request DTOs
// ============================

type UpdateVolunteerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected on-hold"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

type AssignProgramRequest struct {
	ProgramName string     `json:"program_name" validate:"required,min=3,max=150"`
	Role        string     `json:"role" validate:"required,max=100"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
}

type UpdateProgramStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed paused"`
}

type UpdateHoursRequest struct {
	Hours int `json:"hours_contributed" validate:"min=0"`
}

type UpdateProfileRequest struct {
	PreferredRole string   `json:"preferred_role" validate:"omitempty,max=100"`
	About         string   `json:"about_yourself" validate:"omitempty,max=5000"`
	Skills        []string `json:"skills" validate:"omitempty,dive,max=60"`
	Availability  string   `json:"availability" validate:"omitempty,max=100"`
	LocationState string   `json:"location_state" validate:"omitempty,max=100"`
	LocationLGA   string   `json:"location_lga" validate:"omitempty,max=100"`
}

// ============================
// Converters
// ============================

func ToProgramDTO(m model.ProgramModel) ProgramDTO {
	return ProgramDTO{
		ID:        m.ProgramID.String(),
		Name:      m.ProgramName,
		Role:      m.ProgramRole,
		StartDate: m.ProgramStartDate,
		EndDate:   m.ProgramEndDate,
		Status:    m.ProgramStatus,
	}
}

func ToVolunteerDTO(m model.VolunteerModel) VolunteerDTO {
	programs := make([]ProgramDTO, 0, len(m.Programs))
	for _, p := range m.Programs {
		programs = append(programs, ToProgramDTO(p))
	}

	var location *LocationDTO
	if m.VolunteerLocationState != nil || m.VolunteerLocationLGA != nil {
		location = &LocationDTO{}
		if m.VolunteerLocationState != nil {
			location.State = *m.VolunteerLocationState
		}
		if m.VolunteerLocationLGA != nil {
			location.LGA = *m.VolunteerLocationLGA
		}
	}

	return VolunteerDTO{
		ID:            m.VolunteerID.String(),
		UserID:        m.VolunteerUserID.String(),
		PreferredRole: m.VolunteerPreferredRole,
		About:         m.VolunteerAbout,
		Skills:        m.VolunteerSkills,
		Availability:  m.VolunteerAvailability,
		Location:      location,
		Status:        m.VolunteerStatus,
		ReviewedBy:    m.VolunteerReviewedBy,
		ReviewedAt:    m.VolunteerReviewedAt,
		ReviewNotes:   m.VolunteerReviewNotes,
		Programs:      programs,
		Hours:         m.VolunteerHours,
		CreatedAt:     m.VolunteerCreatedAt,
		UpdatedAt:     m.VolunteerUpdatedAt,
	}
}
