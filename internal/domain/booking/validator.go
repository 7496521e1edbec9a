package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnItem         = errs.New("owner cannot book own item")
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrNotItemOwner    = errs.New("only the item owner may decide a booking")
	ErrViewNotAllowed  = errs.New("booking is visible to its booker and the item owner only")
)

// ItemSpec is the slice of an item the booking rules need.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

// ValidateCreation runs the creation eligibility rules. Check order is part
// of the contract because it decides which message the caller sees:
// ownership, availability, time order, start in past, end in past.
func ValidateCreation(bookerID uuid.UUID, item ItemSpec, start, end, now time.Time) error {
	if bookerID == item.OwnerID {
		return ErrOwnItem
	}
	if !item.Available {
		return ErrItemUnavailable
	}
	if !start.Before(end) {
		return ErrStartNotBeforeEnd
	}
	if start.Before(now) {
		return ErrStartInPast
	}
	if end.Before(now) {
		return ErrEndInPast
	}
	return nil
}

// ValidateTransition checks that actorID may approve or reject b. The status
// guard itself lives in Booking.Approve/Reject; this only answers "who".
func ValidateTransition(b *Booking, itemOwnerID, actorID uuid.UUID) error {
	if actorID != itemOwnerID {
		return ErrNotItemOwner
	}
	if b.Status() != StatusWaiting {
		return ErrAlreadyDecided
	}
	return nil
}

// ValidateView allows only the booker and the item owner to see a booking.
func ValidateView(b *Booking, itemOwnerID, actorID uuid.UUID) error {
	if b.IsBookedBy(actorID) || actorID == itemOwnerID {
		return nil
	}
	return ErrViewNotAllowed
}
