//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = builder.BaseTime

func availableItem(ownerID uuid.UUID) booking.ItemSpec {
	return booking.ItemSpec{ID: uuid.New(), OwnerID: ownerID, Available: true}
}

func TestValidateCreation(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()
	start := now.Add(24 * time.Hour)
	end := now.Add(48 * time.Hour)

	t.Run("valid booking passes", func(t *testing.T) {
		err := booking.ValidateCreation(booker, availableItem(owner), start, end, now)
		assert.NoError(t, err)
	})

	cases := []struct {
		name       string
		bookerID   uuid.UUID
		item       booking.ItemSpec
		start, end time.Time
		errIs      error
	}{
		{
			name:     "owner cannot book own item",
			bookerID: owner,
			item:     availableItem(owner),
			start:    start, end: end,
			errIs: booking.ErrOwnItem,
		},
		{
			name:     "unavailable item rejected",
			bookerID: booker,
			item:     booking.ItemSpec{ID: uuid.New(), OwnerID: owner, Available: false},
			start:    start, end: end,
			errIs: booking.ErrItemUnavailable,
		},
		{
			name:     "start equal to end rejected",
			bookerID: booker,
			item:     availableItem(owner),
			start:    start, end: start,
			errIs: booking.ErrStartNotBeforeEnd,
		},
		{
			name:     "start after end rejected",
			bookerID: booker,
			item:     availableItem(owner),
			start:    end, end: start,
			errIs: booking.ErrStartNotBeforeEnd,
		},
		{
			name:     "start in past rejected",
			bookerID: booker,
			item:     availableItem(owner),
			start:    now.Add(-time.Hour), end: end,
			errIs: booking.ErrStartInPast,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidateCreation(tc.bookerID, tc.item, tc.start, tc.end, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("ownership outranks availability", func(t *testing.T) {
		// Both rules are violated; the ownership failure must win.
		item := booking.ItemSpec{ID: uuid.New(), OwnerID: owner, Available: false}
		err := booking.ValidateCreation(owner, item, start, end, now)
		assert.ErrorIs(t, err, booking.ErrOwnItem)
	})

	t.Run("time order outranks start-in-past", func(t *testing.T) {
		err := booking.ValidateCreation(booker, availableItem(owner), now.Add(-time.Hour), now.Add(-2*time.Hour), now)
		assert.ErrorIs(t, err, booking.ErrStartNotBeforeEnd)
	})

	t.Run("start exactly now is allowed", func(t *testing.T) {
		err := booking.ValidateCreation(booker, availableItem(owner), now, end, now)
		assert.NoError(t, err)
	})
}

func TestValidateTransition(t *testing.T) {
	owner := uuid.New()

	t.Run("owner may decide a waiting booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithItemOwner(owner).BuildDomain()
		assert.NoError(t, booking.ValidateTransition(b, owner, owner))
	})

	t.Run("non-owner may not decide", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithItemOwner(owner).BuildDomain()
		err := booking.ValidateTransition(b, owner, uuid.New())
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
	})

	t.Run("booker may not decide own booking", func(t *testing.T) {
		bookerID := uuid.New()
		b := builder.NewBookingBuilder().WithItemOwner(owner).WithBookerID(bookerID).BuildDomain()
		err := booking.ValidateTransition(b, owner, bookerID)
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
	})

	t.Run("decided booking cannot be decided again", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusApproved, booking.StatusRejected, booking.StatusCanceled} {
			b := builder.NewBookingBuilder().WithItemOwner(owner).WithStatus(status).BuildDomain()
			err := booking.ValidateTransition(b, owner, owner)
			assert.ErrorIs(t, err, booking.ErrAlreadyDecided, "status %s", status)
		}
	})

	t.Run("identity check runs before status check", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithItemOwner(owner).WithStatus(booking.StatusApproved).BuildDomain()
		err := booking.ValidateTransition(b, owner, uuid.New())
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
	})
}

func TestValidateView(t *testing.T) {
	owner := uuid.New()
	bookerID := uuid.New()
	b := builder.NewBookingBuilder().WithItemOwner(owner).WithBookerID(bookerID).BuildDomain()

	t.Run("booker may view", func(t *testing.T) {
		assert.NoError(t, booking.ValidateView(b, owner, bookerID))
	})

	t.Run("item owner may view", func(t *testing.T) {
		assert.NoError(t, booking.ValidateView(b, owner, owner))
	})

	t.Run("third party may not view", func(t *testing.T) {
		err := booking.ValidateView(b, owner, uuid.New())
		assert.ErrorIs(t, err, booking.ErrViewNotAllowed)
	})
}
