//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/response"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createUser(name string) *response.UserResponse {
	t := s.T()
	body := map[string]any{"name": name, "email": name + "@example.com"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u response.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return &u
}

func (s *BookingSuite) createItem(ownerID uuid.UUID, name string, available bool) *response.ItemResponse {
	t := s.T()
	body := map[string]any{"name": name, "description": name + " in good shape", "available": available}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/items", body, ownerID.String())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var i response.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &i))
	return &i
}

func (s *BookingSuite) createBooking(bookerID, itemID uuid.UUID, start, end time.Time) *response.BookingResponse {
	t := s.T()
	body := map[string]any{
		"itemId": itemID.String(),
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/bookings", body, bookerID.String())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var b response.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return &b
}

// shiftBookingIntoPast rewrites the stored period so the rental reads as
// finished without waiting for wall-clock time to pass.
func (s *BookingSuite) shiftBookingIntoPast(bookingID uuid.UUID) {
	_, err := s.DB.Exec(context.Background(),
		"UPDATE bookings SET start_date = now() - interval '2 days', end_date = now() - interval '1 day' WHERE id = $1",
		bookingID)
	require.NoError(s.T(), err)
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("booking goes waiting, gets approved, shows up in buckets", func() {
		t := s.T()

		owner := s.createUser("owner")
		booker := s.createUser("booker")
		item := s.createItem(owner.ID, "cordless drill", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		booking := s.createBooking(booker.ID, item.ID, start, start.Add(24*time.Hour))
		require.Equal(t, "waiting", booking.Status)

		// visible to the booker under WAITING and FUTURE
		for _, state := range []string{"WAITING", "FUTURE", "ALL"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings?state="+state, nil, booker.ID.String())
			require.Equal(t, http.StatusOK, w.Code)
			var list []response.BookingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
			require.Len(t, list, 1, "state %s", state)
			require.Equal(t, booking.ID, list[0].ID)
		}

		// and to the owner on the owner side
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/owner?state=WAITING", nil, owner.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var ownerList []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ownerList))
		require.Len(t, ownerList, 1)

		// owner approves
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/bookings/%s?approved=true", booking.ID), nil, owner.ID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var approved response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &approved))
		require.Equal(t, "approved", approved.Status)

		// approval is one-shot
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/bookings/%s?approved=false", booking.ID), nil, owner.ID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)

		// a finished booking moves into PAST
		s.shiftBookingIntoPast(booking.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings?state=PAST", nil, booker.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var past []response.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &past))
		require.Len(t, past, 1)
	})

	s.Run("overlapping periods on one item are rejected", func() {
		t := s.T()

		owner := s.createUser("overlap-owner")
		first := s.createUser("first-booker")
		second := s.createUser("second-booker")
		item := s.createItem(owner.ID, "pressure washer", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		s.createBooking(first.ID, item.ID, start, start.Add(48*time.Hour))

		body := map[string]any{
			"itemId": item.ID.String(),
			"start":  start.Add(24 * time.Hour).Format(time.RFC3339),
			"end":    start.Add(72 * time.Hour).Format(time.RFC3339),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/bookings", body, second.ID.String())
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// back-to-back is fine: the window is half-open
		body["start"] = start.Add(48 * time.Hour).Format(time.RFC3339)
		body["end"] = start.Add(96 * time.Hour).Format(time.RFC3339)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/bookings", body, second.ID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("booking is invisible to strangers", func() {
		t := s.T()

		owner := s.createUser("private-owner")
		booker := s.createUser("private-booker")
		stranger := s.createUser("stranger")
		item := s.createItem(owner.ID, "tile cutter", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		booking := s.createBooking(booker.ID, item.ID, start, start.Add(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/"+booking.ID.String(), nil, stranger.ID.String())
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/"+booking.ID.String(), nil, booker.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("owner cannot book the own item", func() {
		t := s.T()

		owner := s.createUser("self-owner")
		item := s.createItem(owner.ID, "angle grinder", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		body := map[string]any{
			"itemId": item.ID.String(),
			"start":  start.Format(time.RFC3339),
			"end":    start.Add(24 * time.Hour).Format(time.RFC3339),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/bookings", body, owner.ID.String())
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestCommentAfterFinishedRental() {
	s.Run("finished renter may comment, others may not", func() {
		t := s.T()

		owner := s.createUser("comment-owner")
		renter := s.createUser("renter")
		bystander := s.createUser("bystander")
		item := s.createItem(owner.ID, "wallpaper steamer", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		booking := s.createBooking(renter.ID, item.ID, start, start.Add(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/bookings/%s?approved=true", booking.ID), nil, owner.ID.String())
		require.Equal(t, http.StatusOK, w.Code)

		commentURL := "/items/" + item.ID.String() + "/comment"
		commentBody := map[string]any{"text": "did the job"}

		// rental not finished yet
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, commentBody, renter.ID.String())
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		s.shiftBookingIntoPast(booking.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, commentBody, renter.ID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(t, "did the job", created.Text)
		require.Equal(t, "renter", created.AuthorName)

		// someone who never rented stays locked out
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, commentBody, bystander.ID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)

		// the comment shows up on the item view
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/items/"+item.ID.String(), nil, bystander.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var detail response.ItemDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Len(t, detail.Comments, 1)
	})
}

func (s *BookingSuite) TestOwnerItemViewShowsBookings() {
	s.Run("owner sees last and next booking, others do not", func() {
		t := s.T()

		owner := s.createUser("view-owner")
		renter := s.createUser("view-renter")
		item := s.createItem(owner.ID, "sander", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		past := s.createBooking(renter.ID, item.ID, start, start.Add(12*time.Hour))
		s.shiftBookingIntoPast(past.ID)
		next := s.createBooking(renter.ID, item.ID, start.Add(48*time.Hour), start.Add(72*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/items/"+item.ID.String(), nil, owner.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var ownerView response.ItemDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ownerView))
		require.NotNil(t, ownerView.LastBooking)
		require.NotNil(t, ownerView.NextBooking)
		require.Equal(t, past.ID, ownerView.LastBooking.ID)
		require.Equal(t, next.ID, ownerView.NextBooking.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/items/"+item.ID.String(), nil, renter.ID.String())
		require.Equal(t, http.StatusOK, w.Code)
		var renterView response.ItemDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &renterView))
		require.Nil(t, renterView.LastBooking)
		require.Nil(t, renterView.NextBooking)
	})
}
