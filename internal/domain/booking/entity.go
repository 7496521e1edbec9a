package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStartNotBeforeEnd = errs.New("start time must be before end time")
	ErrStartInPast       = errs.New("start time cannot be in the past")
	ErrEndInPast         = errs.New("end time cannot be in the past")
	ErrAlreadyDecided    = errs.New("booking has already been decided")
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
}

// NewBooking constructs a booking in the initial waiting status. Eligibility
// against the item and the clock is the validator's job and runs before this.
func NewBooking(itemID, bookerID uuid.UUID, period Period, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    StatusWaiting,
		createdAt: now,
	}
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, period Period, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
	}
}

// Approve moves the booking into its terminal approved status. It succeeds
// exactly once per booking.
func (b *Booking) Approve() error {
	return b.decide(StatusApproved)
}

func (b *Booking) Reject() error {
	return b.decide(StatusRejected)
}

func (b *Booking) decide(target Status) error {
	if b.status != StatusWaiting {
		return errs.Mark(errs.Newf("booking %s is %s", b.id, b.status), ErrAlreadyDecided)
	}
	b.status = target
	return nil
}

func (b *Booking) IsBookedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
