package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationTransitions(t *testing.T) {
	// pending may be decided either way or parked as reviewed
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusPending, StatusReviewed))

	// reviewed is still decidable
	assert.True(t, CanTransition(StatusReviewed, StatusAccepted))
	assert.True(t, CanTransition(StatusReviewed, StatusRejected))
	assert.False(t, CanTransition(StatusReviewed, StatusPending))

	// accepted and rejected are final
	for _, terminal := range []string{StatusAccepted, StatusRejected} {
		for _, to := range []string{StatusPending, StatusReviewed, StatusAccepted, StatusRejected} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s must be refused", terminal, to)
		}
	}
}

func TestApplicationTransitionRejectsUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("archived", StatusAccepted))
	assert.False(t, CanTransition(StatusPending, "archived"))
	assert.False(t, CanTransition(StatusPending, StatusPending))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusAccepted))
	assert.True(t, IsTerminal(StatusRejected))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusReviewed))
}

func TestIsReviewDecision(t *testing.T) {
	assert.True(t, IsReviewDecision(StatusAccepted))
	assert.True(t, IsReviewDecision(StatusRejected))
	assert.False(t, IsReviewDecision(StatusReviewed))
	assert.False(t, IsReviewDecision(StatusPending))
}
