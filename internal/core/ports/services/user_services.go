package services

import (
	"context"
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username (normalized).
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new account, hosting the avatar (required) and
	// cover image (optional) on the media store first.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar dto.FileUpload, coverImage *dto.FileUpload) (*domain.User, error)

	// UpdateUserDetails updates fullname and/or email.
	UpdateUserDetails(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// UpdateAvatar replaces the avatar asset and deletes the old one.
	UpdateAvatar(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error)

	// UpdateCoverImage replaces the cover image asset and deletes the old one.
	UpdateCoverImage(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error)

	// UpdateRefreshToken stores a new refresh token hash and expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks credentials; identifier may be a username or
	// an email address.
	AuthenticateUser(ctx context.Context, identifier, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
