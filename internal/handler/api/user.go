package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// @Summary Register user
// @Description Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User payload"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.userUseCase.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		abortUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserRM(rm))
}

// @Summary Update user
// @Description Patch the user's name and/or email
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.userUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserRM(rm))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		abortUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserRM(rm))
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	rms, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		abortUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserRMs(rms))
}

// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		abortUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
	case errors.Is(err, user.ErrEmptyName),
		errors.Is(err, user.ErrEmptyEmail),
		errors.Is(err, user.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
