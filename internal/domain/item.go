package domain

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Owner       *User  `json:"owner,omitempty"` // Populated when fetching item details
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// CanBeModifiedBy reports whether userID may change the item's fields.
func (i *Item) CanBeModifiedBy(userID int64) bool {
	return i.OwnerID == userID
}

// ItemDetails is the extended item view: the item plus its comments, and
// the last/next approved booking when the viewer is the owner. Renters
// never see the booking fields.
type ItemDetails struct {
	Item
	LastBooking *Booking  `json:"last_booking,omitempty"`
	NextBooking *Booking  `json:"next_booking,omitempty"`
	Comments    []Comment `json:"comments"`
}
