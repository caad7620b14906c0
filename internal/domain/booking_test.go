package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingCanBeViewedBy(t *testing.T) {
	booking := &Booking{ID: 1, BookerID: 10, OwnerID: 20}

	assert.True(t, booking.CanBeViewedBy(10), "booker can view")
	assert.True(t, booking.CanBeViewedBy(20), "owner can view")
	assert.False(t, booking.CanBeViewedBy(30), "third party cannot view")
}

func TestBookingCanBeDecidedBy(t *testing.T) {
	booking := &Booking{ID: 1, BookerID: 10, OwnerID: 20}

	assert.True(t, booking.CanBeDecidedBy(20), "owner decides")
	assert.False(t, booking.CanBeDecidedBy(10), "booker cannot decide")
	assert.False(t, booking.CanBeDecidedBy(30), "third party cannot decide")
}

func TestBookingIsDecided(t *testing.T) {
	waiting := &Booking{Status: BookingStatusWaiting}
	approved := &Booking{Status: BookingStatusApproved}
	rejected := &Booking{Status: BookingStatusRejected}

	assert.False(t, waiting.IsDecided())
	assert.True(t, approved.IsDecided())
	assert.True(t, rejected.IsDecided())
}

func TestItemCanBeModifiedBy(t *testing.T) {
	item := &Item{ID: 5, OwnerID: 7}

	assert.True(t, item.CanBeModifiedBy(7))
	assert.False(t, item.CanBeModifiedBy(8))
}

func TestBookingPartiesIndependentOfPeriod(t *testing.T) {
	// Authorization depends only on identities, never on timestamps.
	booking := &Booking{
		BookerID: 10,
		OwnerID:  20,
		Start:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		Status:   BookingStatusApproved,
	}
	assert.True(t, booking.CanBeViewedBy(10))
	assert.True(t, booking.CanBeDecidedBy(20))
}
