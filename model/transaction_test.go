package model

import (
	"testing"

	"travel_booking/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(constants.STATUS_WAITING_PAYMENT, constants.STATUS_PENDING))
	assert.True(t, CanTransition(constants.STATUS_WAITING_PAYMENT, constants.STATUS_CANCELED))
	assert.True(t, CanTransition(constants.STATUS_PENDING, constants.STATUS_WAITING_CONFIRMATION))
	assert.True(t, CanTransition(constants.STATUS_PENDING, constants.STATUS_CANCELED))
	assert.True(t, CanTransition(constants.STATUS_WAITING_CONFIRMATION, constants.STATUS_SUCCESS))
	assert.True(t, CanTransition(constants.STATUS_WAITING_CONFIRMATION, constants.STATUS_FAILED))
	assert.True(t, CanTransition(constants.STATUS_WAITING_CONFIRMATION, constants.STATUS_CANCELED))

	// No skipping ahead or moving backward.
	assert.False(t, CanTransition(constants.STATUS_WAITING_PAYMENT, constants.STATUS_SUCCESS))
	assert.False(t, CanTransition(constants.STATUS_WAITING_PAYMENT, constants.STATUS_WAITING_CONFIRMATION))
	assert.False(t, CanTransition(constants.STATUS_PENDING, constants.STATUS_SUCCESS))
	assert.False(t, CanTransition(constants.STATUS_PENDING, constants.STATUS_WAITING_PAYMENT))
	assert.False(t, CanTransition(constants.STATUS_WAITING_CONFIRMATION, constants.STATUS_PENDING))
}

func TestFinalStatesHaveNoExits(t *testing.T) {
	finals := []string{constants.STATUS_SUCCESS, constants.STATUS_FAILED, constants.STATUS_CANCELED}
	all := []string{
		constants.STATUS_WAITING_PAYMENT,
		constants.STATUS_PENDING,
		constants.STATUS_WAITING_CONFIRMATION,
		constants.STATUS_SUCCESS,
		constants.STATUS_FAILED,
		constants.STATUS_CANCELED,
	}

	for _, from := range finals {
		assert.True(t, IsFinalStatus(from))
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestNonFinalStates(t *testing.T) {
	assert.False(t, IsFinalStatus(constants.STATUS_WAITING_PAYMENT))
	assert.False(t, IsFinalStatus(constants.STATUS_PENDING))
	assert.False(t, IsFinalStatus(constants.STATUS_WAITING_CONFIRMATION))
}

func TestSameStatusIsNeverATransition(t *testing.T) {
	for from := range statusTransitions {
		assert.False(t, CanTransition(from, from), from)
	}
}
