package domain

import "time"

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `json:"id"`
	ItemID   int64         `json:"item_id"`
	Item     *Item         `json:"item,omitempty"` // Populated when fetching booking details
	BookerID int64         `json:"booker_id"`
	Booker   *User         `json:"booker,omitempty"`
	OwnerID  int64         `json:"owner_id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// CanBeViewedBy reports whether userID is one of the two parties of the
// booking: the item's owner or the booker.
func (b *Booking) CanBeViewedBy(userID int64) bool {
	return b.OwnerID == userID || b.BookerID == userID
}

// CanBeDecidedBy reports whether userID may approve or reject the booking.
// Only the item's owner may decide.
func (b *Booking) CanBeDecidedBy(userID int64) bool {
	return b.OwnerID == userID
}

// IsDecided reports whether the booking has reached a terminal status.
func (b *Booking) IsDecided() bool {
	return b.Status != BookingStatusWaiting
}
