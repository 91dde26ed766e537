package services

import (
	"context"
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// TokenSvcFacade handles access and refresh token lifecycle.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived JWT for the user. Returns
	// the signed token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a refresh token for the user and persists
	// its hash on the user record. Returns the raw token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the stored
	// hash and expiry and returns the owning user.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
