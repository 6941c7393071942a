package api

import (
	"time"

	"go-barber-api/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Diego Fernandes"`
	Email     string    `json:"email" example:"diego@gobarber.com"`
	Provider  bool      `json:"provider" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
	}
}
