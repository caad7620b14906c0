package domain

import "time"

// ItemRequest is a wish published by a user ("I'm looking for an X").
// Items created with a matching RequestID fulfil the request.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	Created     time.Time `json:"created"`
	Items       []Item    `json:"items,omitempty"`
}
