package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemUseCase    usecase.ItemUseCase
	commentUseCase usecase.CommentUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase, commentUseCase usecase.CommentUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase:    itemUseCase,
		commentUseCase: commentUseCase,
	}
}

// @Summary Create item
// @Description List a new item for rental; the caller becomes the owner
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.itemUseCase.Create(c.Request.Context(), callerID, req.ToParams())
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemRM(rm))
}

// @Summary Update item
// @Description Patch name, description and/or availability; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.itemUseCase.Update(c.Request.Context(), callerID, id, req.ToParams())
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRM(rm))
}

// @Summary Get item
// @Description Get an item with comments; the owner also sees last/next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.itemUseCase.Get(c.Request.Context(), callerID, id)
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailRM(rm))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := parsePageQuery(c)
	if !ok {
		return
	}

	rms, err := h.itemUseCase.ListOwn(c.Request.Context(), callerID, from, size)
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailRMs(rms))
}

// @Summary Search items
// @Description Search available items by name or description; blank text yields an empty list
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, ok := parsePageQuery(c)
	if !ok {
		return
	}

	rms, err := h.itemUseCase.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRMs(rms))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Item ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), callerID, id); err != nil {
		abortItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on item
// @Description Leave a comment; allowed only after a finished, non-rejected booking
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	callerID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.commentUseCase.AddComment(c.Request.Context(), callerID, id, req.Text)
	if err != nil {
		abortItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentRM(rm))
}

func abortItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found", nil)
	case errors.Is(err, usecase.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the owner may change this item", nil)
	case errors.Is(err, item.ErrEmptyName),
		errors.Is(err, item.ErrEmptyDescription),
		errors.Is(err, comment.ErrEmptyText),
		errors.Is(err, comment.ErrTextTooLong),
		errors.Is(err, comment.ErrNotEligible),
		errors.Is(err, usecase.ErrInvalidPage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
