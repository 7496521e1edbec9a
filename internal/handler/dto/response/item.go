package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingShortResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemRM(rm *readmodel.ItemRM) *ItemResponse {
	return &ItemResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		RequestID:   rm.RequestID,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromItemRMs(rms []*readmodel.ItemRM) []*ItemResponse {
	out := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromItemRM(rm)
	}
	return out
}

func FromItemDetailRM(rm *readmodel.ItemDetailRM) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemRM(&rm.ItemRM),
		LastBooking:  FromBookingShortRM(rm.LastBooking),
		NextBooking:  FromBookingShortRM(rm.NextBooking),
		Comments:     FromCommentRMs(rm.Comments),
	}
}

func FromItemDetailRMs(rms []*readmodel.ItemDetailRM) []*ItemDetailResponse {
	out := make([]*ItemDetailResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromItemDetailRM(rm)
	}
	return out
}
