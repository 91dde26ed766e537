package dto

import (
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// RegisterUserRequest defines the multipart form fields for registration.
// The avatar and cover image files travel separately as FileUpload.
type RegisterUserRequest struct {
	Fullname string `form:"fullname" binding:"required"`
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

// LoginRequest authenticates by username or email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token when it is not sent as a
// cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest verifies the old password before storing the new one.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UpdateUserRequest defines the profile fields a user may change.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UserResponse is the client-facing projection of a user. It never carries
// the password hash or refresh token.
type UserResponse struct {
	UserID        string `json:"userID"`
	Fullname      string `json:"fullname"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
}

// LoginResponse returns both tokens alongside the user projection. The
// tokens are additionally set as http-only cookies.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse returns the rotated token pair.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToUserResponse converts a domain.User to its client-facing projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Fullname:      user.Fullname,
		Username:      user.Username,
		Email:         user.Email,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
	}
}
