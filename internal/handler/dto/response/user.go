package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	return &UserResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Email:     rm.Email,
		CreatedAt: rm.CreatedAt,
	}
}

func FromUserRMs(rms []*readmodel.UserRM) []*UserResponse {
	out := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromUserRM(rm)
	}
	return out
}
