package repositories

import (
	"context"
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their (lowercase) username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves a user matching either value.
	// Used for login and for duplicate checks at registration.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates a user's profile fields (fullname, email, avatar,
	// cover image).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateRefreshToken stores a new refresh token hash and expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// WatchHistoryWriter records watched videos into a user's history set.
type WatchHistoryWriter interface {
	// AddToWatchHistory inserts a (user, video) pair. Re-watching is a no-op:
	// the history has set semantics.
	AddToWatchHistory(ctx context.Context, userID, videoID string, watchedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	WatchHistoryWriter
}
