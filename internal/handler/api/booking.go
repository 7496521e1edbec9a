package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Description Request a time-bounded booking of an item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.bookingUseCase.Create(c.Request.Context(), callerID, req.ToParams())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRM(rm))
}

// @Summary Get booking
// @Description Get a booking; visible only to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.bookingUseCase.Get(c.Request.Context(), callerID, id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Approve or reject booking
// @Description Decide a waiting booking; item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) SetApproval(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}

	rm, err := h.bookingUseCase.SetApproval(c.Request.Context(), callerID, id, approved)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List bookings as booker
// @Description List the caller's bookings filtered into a temporal bucket
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param state query string false "ALL, CURRENT, FUTURE, PAST, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListForBooker)
}

// @Summary List bookings as item owner
// @Description List bookings of the caller's items filtered into a temporal bucket
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param state query string false "ALL, CURRENT, FUTURE, PAST, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListForOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	load func(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*readmodel.BookingRM, error),
) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := parsePageQuery(c)
	if !ok {
		return
	}

	rms, err := load(c.Request.Context(), callerID, c.Query("state"), from, size)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rms))
}

// NotAuthorized on view and transition is deliberately answered with 404 so
// a stranger cannot probe which booking ids exist.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, booking.ErrViewNotAllowed),
		errors.Is(err, booking.ErrNotItemOwner),
		errors.Is(err, booking.ErrOwnItem):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrBookingOverlap):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item is already booked for this period", nil)
	case errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrStartNotBeforeEnd),
		errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrEndInPast),
		errors.Is(err, booking.ErrAlreadyDecided),
		errors.Is(err, booking.ErrUnknownBucket),
		errors.Is(err, usecase.ErrInvalidPage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
