package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RequestRM struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requesterId"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []*ItemAnswerRM `json:"items"`
}
