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

func TestNewBooking(t *testing.T) {
	itemID := uuid.New()
	bookerID := uuid.New()
	period, err := booking.NewPeriod(now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, err)

	b := booking.NewBooking(itemID, bookerID, period, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, itemID, b.ItemID())
	assert.Equal(t, bookerID, b.BookerID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
	assert.Equal(t, now, b.CreatedAt())
	assert.True(t, b.IsBookedBy(bookerID))
	assert.False(t, b.IsBookedBy(uuid.New()))
}

func TestBookingDecision(t *testing.T) {
	t.Run("approve moves waiting to approved", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Approve())
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject moves waiting to rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Reject())
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("second decision fails and status stays put", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Approve())

		assert.ErrorIs(t, b.Approve(), booking.ErrAlreadyDecided)
		assert.ErrorIs(t, b.Reject(), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("no transition out of any terminal status", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusApproved, booking.StatusRejected, booking.StatusCanceled} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			assert.ErrorIs(t, b.Approve(), booking.ErrAlreadyDecided, "status %s", status)
			assert.Equal(t, status, b.Status())
		}
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusWaiting.IsTerminal())
	assert.True(t, booking.StatusApproved.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCanceled.IsTerminal())
}
