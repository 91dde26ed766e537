package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for a user. Nullable columns use sql
// null types; the repository converts to/from domain.User.
type User struct {
	UserID        string         `db:"user_id"`
	Fullname      string         `db:"fullname"`
	Username      string         `db:"username"`
	Email         string         `db:"email"`
	PasswordHash  string         `db:"password_hash"`
	AvatarURL     string         `db:"avatar_url"`
	CoverImageURL sql.NullString `db:"cover_image_url"`
	CreatedAt     time.Time      `db:"created_at"`
	LastUpdatedAt time.Time      `db:"last_updated_at"`

	// Refresh token fields: only the SHA-256 hash is stored.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
