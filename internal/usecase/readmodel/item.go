package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ItemRM struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ItemDetailRM enriches an item with its comments and, for the owner, the
// last and next booking of the item.
type ItemDetailRM struct {
	ItemRM
	LastBooking *BookingShortRM `json:"lastBooking,omitempty"`
	NextBooking *BookingShortRM `json:"nextBooking,omitempty"`
	Comments    []*CommentRM    `json:"comments"`
}

// ItemAnswerRM is the shape of an item inside a request view.
type ItemAnswerRM struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"requestId"`
}
