package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{name: "available to claimed", from: StatusAvailable, to: StatusClaimed, allowed: true},
		{name: "available to expired", from: StatusAvailable, to: StatusExpired, allowed: true},
		{name: "available to picked_up skips claim", from: StatusAvailable, to: StatusPickedUp, allowed: false},
		{name: "claimed to picked_up", from: StatusClaimed, to: StatusPickedUp, allowed: true},
		{name: "claimed to expired", from: StatusClaimed, to: StatusExpired, allowed: true},
		{name: "claimed back to available", from: StatusClaimed, to: StatusAvailable, allowed: false},
		{name: "picked_up is terminal", from: StatusPickedUp, to: StatusExpired, allowed: false},
		{name: "expired is terminal", from: StatusExpired, to: StatusAvailable, allowed: false},
		{name: "self transition rejected", from: StatusAvailable, to: StatusAvailable, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDonationStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusAvailable.IsTerminal())
	assert.False(t, StatusClaimed.IsTerminal())
	assert.True(t, StatusPickedUp.IsTerminal())
	assert.True(t, StatusExpired.IsTerminal())
}

func TestDonationStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []DonationStatus{StatusAvailable, StatusClaimed, StatusPickedUp, StatusExpired} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, DonationStatus("cancelled").IsValid())
	assert.False(t, DonationStatus("").IsValid())
}
