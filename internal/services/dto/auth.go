package dto

import (
	"time"

	"mentorhub_backend/internal/models"
)

type SignupRequest struct {
	FullName   string            `json:"fullName" binding:"required"`
	Email      string            `json:"email" binding:"required,email"`
	Password   string            `json:"password" binding:"required"`
	Profession models.Profession `json:"profession" binding:"required,oneof=student mentor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the identity minus secret fields.
type UserResponse struct {
	ID         string            `json:"id"`
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Profession models.Profession `json:"profession"`
	CreatedAt  time.Time         `json:"createdAt"`
}

type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// NewUserResponse strips the secret fields from a user record.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Profession: user.Profession,
		CreatedAt:  user.CreatedAt,
	}
}
