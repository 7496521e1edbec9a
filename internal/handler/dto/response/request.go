package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RequestItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"requestId"`
}

type RequestResponse struct {
	ID          uuid.UUID              `json:"id"`
	RequesterID uuid.UUID              `json:"requesterId"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"createdAt"`
	Items       []*RequestItemResponse `json:"items"`
}

func FromRequestRM(rm *readmodel.RequestRM) *RequestResponse {
	items := make([]*RequestItemResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = &RequestItemResponse{
			ID:          it.ID,
			OwnerID:     it.OwnerID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}
	return &RequestResponse{
		ID:          rm.ID,
		RequesterID: rm.RequesterID,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
		Items:       items,
	}
}

func FromRequestRMs(rms []*readmodel.RequestRM) []*RequestResponse {
	out := make([]*RequestResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRequestRM(rm)
	}
	return out
}
