package domain

import (
	"fmt"
	"time"
)

// BookingState is a logical bucket a booking falls into when listed.
// CURRENT, PAST and FUTURE are computed from the timestamps alone;
// WAITING and REJECTED filter on status alone.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState validates a state token once at the boundary. Any
// further dispatch is on the returned closed enumeration.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), nil
	default:
		return "", &ValidationError{Message: fmt.Sprintf("Unknown state: %s", s)}
	}
}

// Matches reports whether the booking belongs to the state bucket at the
// reference instant now.
func (s BookingState) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == BookingStatusWaiting
	case StateRejected:
		return b.Status == BookingStatusRejected
	default:
		return true
	}
}

// FilterBookingsByState keeps the bookings matching the state bucket,
// preserving the input ordering.
func FilterBookingsByState(bookings []Booking, state BookingState, now time.Time) []Booking {
	if state == StateAll {
		return bookings
	}
	filtered := make([]Booking, 0, len(bookings))
	for i := range bookings {
		if state.Matches(&bookings[i], now) {
			filtered = append(filtered, bookings[i])
		}
	}
	return filtered
}
