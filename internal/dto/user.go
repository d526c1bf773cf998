package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// UserResponse defines the user data exposed by the API.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		AuthProvider: string(user.AuthProvider),
		CreatedAt:    user.CreatedAt,
	}
}
