package request

import (
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r CreateItemRequest) ToParams() usecase.CreateItemParams {
	return usecase.CreateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

func (r UpdateItemRequest) ToParams() usecase.UpdateItemParams {
	return usecase.UpdateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}
