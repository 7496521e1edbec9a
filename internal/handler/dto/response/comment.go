package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromCommentRM(rm *readmodel.CommentRM) *CommentResponse {
	return &CommentResponse{
		ID:         rm.ID,
		ItemID:     rm.ItemID,
		AuthorName: rm.AuthorName,
		Text:       rm.Text,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromCommentRMs(rms []*readmodel.CommentRM) []*CommentResponse {
	out := make([]*CommentResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCommentRM(rm)
	}
	return out
}
