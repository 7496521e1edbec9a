package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (denormalized rows for the read side)

type BookerRM struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookedItemRM struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name"`
}

type BookingRM struct {
	ID        uuid.UUID    `json:"id"`
	Start     time.Time    `json:"start"`
	End       time.Time    `json:"end"`
	Status    string       `json:"status"`
	Item      BookedItemRM `json:"item"`
	Booker    BookerRM     `json:"booker"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BookingShortRM is the trimmed shape embedded in owner-facing item views.
type BookingShortRM struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}
