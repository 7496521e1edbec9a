package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestUseCase usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase}
}

// @Summary Create item request
// @Description Ask other users to list an item matching the description
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateRequestRequest true "Request payload"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.requestUseCase.Create(c.Request.Context(), callerID, req.Description)
	if err != nil {
		abortRequestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestRM(rm))
}

// @Summary List own requests
// @Description List the caller's requests with the items answering them
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}

	rms, err := h.requestUseCase.ListOwn(c.Request.Context(), callerID)
	if err != nil {
		abortRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRMs(rms))
}

// @Summary List other users' requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := parsePageQuery(c)
	if !ok {
		return
	}

	rms, err := h.requestUseCase.ListOthers(c.Request.Context(), callerID, from, size)
	if err != nil {
		abortRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRMs(rms))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.requestUseCase.Get(c.Request.Context(), callerID, id)
	if err != nil {
		abortRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRM(rm))
}

func abortRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, request.ErrEmptyDescription),
		errors.Is(err, usecase.ErrInvalidPage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
