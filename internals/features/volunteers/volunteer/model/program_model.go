package model

import (
	"time"

	"github.com/google/uuid"
)

// Program statuses. A completed program stays completed.
const (
	ProgramActive    = "active"
	ProgramCompleted = "completed"
	ProgramPaused    = "paused"
)

// ProgramModel is a program assignment owned by a volunteer. Assignments only
// accumulate; they are never replaced, and each runs its own lifecycle
// independent of the parent volunteer's status.
type ProgramModel struct {
	ProgramID          uuid.UUID  `gorm:"column:program_id;type:uuid;default:gen_random_uuid();primaryKey" json:"program_id"`
	ProgramVolunteerID uuid.UUID  `gorm:"column:program_volunteer_id;type:uuid;index;not null" json:"program_volunteer_id"`
	ProgramName        string     `gorm:"column:program_name;size:150;not null" json:"program_name"`
	ProgramRole        string     `gorm:"column:program_role;size:100;not null" json:"program_role"`
	ProgramStartDate   time.Time  `gorm:"column:program_start_date;not null" json:"program_start_date"`
	ProgramEndDate     *time.Time `gorm:"column:program_end_date" json:"program_end_date,omitempty"`
	ProgramStatus      string     `gorm:"column:program_status;type:varchar(20);not null;default:'active'" json:"program_status"`
	ProgramCreatedAt   time.Time  `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
}

func (ProgramModel) TableName() string {
	return "volunteer_programs"
}

func IsValidProgramStatus(s string) bool {
	switch s {
	case ProgramActive, ProgramCompleted, ProgramPaused:
		return true
	}
	return false
}

// CanTransitionProgram: active and paused swap freely and either may complete;
// completed is final.
func CanTransitionProgram(from, to string) bool {
	if !IsValidProgramStatus(from) || !IsValidProgramStatus(to) || from == to {
		return false
	}
	switch from {
	case ProgramActive:
		return to == ProgramPaused || to == ProgramCompleted
	case ProgramPaused:
		return to == ProgramActive || to == ProgramCompleted
	}
	return false
}
