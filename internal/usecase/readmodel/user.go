package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type UserRM struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
