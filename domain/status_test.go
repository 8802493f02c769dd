package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStylesCoverAllStatuses(t *testing.T) {
	// Every canonical status must land in exactly one style bucket.
	for status := range VehicleStatuses {
		style, ok := StatusStyles[status]
		assert.True(t, ok, "status %q has no style", status)
		assert.Contains(t, []string{StyleAvailable, StyleBusy, StyleInactive}, style)
	}
	assert.Len(t, StatusStyles, len(VehicleStatuses))
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, StyleAvailable, StyleFor(StatusActive))
	assert.Equal(t, StyleAvailable, StyleFor(StatusNew))
	assert.Equal(t, StyleBusy, StyleFor(StatusFare))
	assert.Equal(t, StyleInactive, StyleFor(StatusParked))
	assert.Equal(t, StyleInactive, StyleFor(StatusMaintenance))
	assert.Equal(t, StyleInactive, StyleFor(StatusCleaning))
	assert.Equal(t, StyleInactive, StyleFor("unheard-of"))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 400, StatusCode(ErrInsufficientFunds))
	assert.Equal(t, 400, StatusCode(ErrBadCoords))
	assert.Equal(t, 401, StatusCode(ErrMissingToken))
	assert.Equal(t, 401, StatusCode(ErrInvalidCreds))
	assert.Equal(t, 403, StatusCode(ErrVehicleAccess))
	assert.Equal(t, 404, StatusCode(ErrPlayerNotFound))
	assert.Equal(t, 409, StatusCode(ErrDuplicatePlayer))
	assert.Equal(t, 500, StatusCode(assert.AnError))
}
