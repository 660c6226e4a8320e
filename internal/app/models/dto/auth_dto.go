package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// RegisterRequest represents a self-service registration request. The
// account stays pending until an admin assigns the requested role.
type RegisterRequest struct {
	Email         string  `json:"email" binding:"required,email" example:"jane@tutorhub.io"`
	Password      string  `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FullName      string  `json:"fullName" binding:"required,min=2,max=100" example:"Jane Doe"`
	BirthDate     *string `json:"birthDate,omitempty" example:"2001-07-15"`
	Gender        *string `json:"gender,omitempty" example:"female"`
	RequestedRole string  `json:"requestedRole" binding:"required,oneof=TUTOR STUDENT" example:"STUDENT"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType" example:"Bearer"`
}

// UserResponse is the public user representation
type UserResponse struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	BirthDate     *time.Time `json:"birthDate,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	Role          *string    `json:"role"`
	RequestedRole string     `json:"requestedRole"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	var role *string
	if user.Role != nil {
		r := string(*user.Role)
		role = &r
	}

	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		BirthDate:     user.BirthDate,
		Gender:        user.Gender,
		Role:          role,
		RequestedRole: string(user.RequestedRole),
		CreatedAt:     user.CreatedAt,
	}
}
