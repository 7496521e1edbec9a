package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BaseTime is the fixed reference instant test clocks start from.
var BaseTime = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	id         uuid.UUID
	itemID     uuid.UUID
	itemOwner  uuid.UUID
	itemName   string
	bookerID   uuid.UUID
	bookerName string
	start      time.Time
	end        time.Time
	status     booking.Status
	createdAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:         uuid.New(),
		itemID:     uuid.New(),
		itemOwner:  uuid.New(),
		itemName:   "cordless drill",
		bookerID:   uuid.New(),
		bookerName: "Bob",
		start:      BaseTime.Add(24 * time.Hour),
		end:        BaseTime.Add(48 * time.Hour),
		status:     booking.StatusWaiting,
		createdAt:  BaseTime,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithItemID(id uuid.UUID) *BookingBuilder {
	b.itemID = id
	return b
}

func (b *BookingBuilder) WithItemOwner(id uuid.UUID) *BookingBuilder {
	b.itemOwner = id
	return b
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.bookerID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.id,
		b.itemID,
		b.bookerID,
		booking.ReconstructPeriod(b.start, b.end),
		b.status,
		b.createdAt,
	)
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:     b.id,
		Start:  b.start,
		End:    b.end,
		Status: string(b.status),
		Item: readmodel.BookedItemRM{
			ID:      b.itemID,
			OwnerID: b.itemOwner,
			Name:    b.itemName,
		},
		Booker: readmodel.BookerRM{
			ID:   b.bookerID,
			Name: b.bookerName,
		},
		CreatedAt: b.createdAt,
	}
}
