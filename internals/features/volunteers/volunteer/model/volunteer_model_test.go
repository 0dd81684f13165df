package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolunteerTransitionsAreFreeBetweenKnownStates(t *testing.T) {
	states := []string{StatusPending, StatusApproved, StatusRejected, StatusOnHold}
	for _, from := range states {
		for _, to := range states {
			if from == to {
				continue
			}
			assert.True(t, CanTransition(from, to), "%s -> %s should be allowed", from, to)
		}
	}
}

func TestVolunteerTransitionRejectsUnknownStates(t *testing.T) {
	assert.False(t, CanTransition("banned", StatusApproved))
	assert.False(t, CanTransition(StatusApproved, "banned"))
}

func TestValidateHoursUpdate(t *testing.T) {
	assert.NoError(t, ValidateHoursUpdate(10, 10))
	assert.NoError(t, ValidateHoursUpdate(10, 15))
	assert.NoError(t, ValidateHoursUpdate(0, 0))

	err := ValidateHoursUpdate(10, 9)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decrease")
}

func TestProgramTransitions(t *testing.T) {
	assert.True(t, CanTransitionProgram(ProgramActive, ProgramPaused))
	assert.True(t, CanTransitionProgram(ProgramActive, ProgramCompleted))
	assert.True(t, CanTransitionProgram(ProgramPaused, ProgramActive))
	assert.True(t, CanTransitionProgram(ProgramPaused, ProgramCompleted))

	// completed is final
	assert.False(t, CanTransitionProgram(ProgramCompleted, ProgramActive))
	assert.False(t, CanTransitionProgram(ProgramCompleted, ProgramPaused))
}
