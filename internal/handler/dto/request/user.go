package request

import (
	"shareit/internal/usecase"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r CreateUserRequest) ToParams() usecase.CreateUserParams {
	return usecase.CreateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}

func (r UpdateUserRequest) ToParams() usecase.UpdateUserParams {
	return usecase.UpdateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}
