package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatusExpiresOpenCalls(t *testing.T) {
	deadline := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	before := deadline.Add(-time.Hour)
	after := deadline.Add(time.Hour)

	assert.Equal(t, CallStatusOpen, EffectiveStatus(CallStatusOpen, deadline, before))
	assert.Equal(t, CallStatusExpired, EffectiveStatus(CallStatusOpen, deadline, after))
}

func TestEffectiveStatusLeavesOtherStatusesAlone(t *testing.T) {
	deadline := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	after := deadline.Add(time.Hour)

	// only "open" is subject to deadline expiry
	for _, status := range []string{CallStatusDraft, CallStatusClosed, CallStatusCancelled} {
		assert.Equal(t, status, EffectiveStatus(status, deadline, after))
	}
}

func TestEffectiveStatusNeverMutatesStoredStatus(t *testing.T) {
	call := CallModel{
		CallStatus:   CallStatusOpen,
		CallDeadline: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	derived := EffectiveStatus(call.CallStatus, call.CallDeadline, call.CallDeadline.Add(48*time.Hour))

	assert.Equal(t, CallStatusExpired, derived)
	assert.Equal(t, CallStatusOpen, call.CallStatus)
}

func TestIsAcceptingApplications(t *testing.T) {
	deadline := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	before := deadline.Add(-time.Hour)
	after := deadline.Add(time.Hour)

	call := CallModel{CallStatus: CallStatusOpen, CallDeadline: deadline, CallIsPublished: true}
	assert.True(t, call.IsAcceptingApplications(before))
	assert.False(t, call.IsAcceptingApplications(after), "expired calls refuse applications")

	call.CallIsPublished = false
	assert.False(t, call.IsAcceptingApplications(before), "unpublished calls refuse applications")

	call.CallIsPublished = true
	call.CallStatus = CallStatusDraft
	assert.False(t, call.IsAcceptingApplications(before))
}

func TestValidateSchedule(t *testing.T) {
	eventDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateSchedule(eventDate.AddDate(0, 0, -7), eventDate))

	// deadline after the event
	assert.Error(t, ValidateSchedule(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), eventDate))
	// equal is not strictly before
	assert.Error(t, ValidateSchedule(eventDate, eventDate))
}

func TestCallApplicationStatusesAreAllValidAndReversible(t *testing.T) {
	for _, s := range []string{CallApplicationPending, CallApplicationAccepted, CallApplicationRejected} {
		assert.True(t, IsValidCallApplicationStatus(s))
	}
	assert.False(t, IsValidCallApplicationStatus("waitlisted"))
}
