package domain

import "time"

// User represents a registered account. A user doubles as a channel:
// other users subscribe to it and it owns videos, tweets and playlists.
type User struct {
	UserID        string `json:"userID"` // Primary Key (UUID)
	Fullname      string `json:"fullname"`
	Username      string `json:"username"` // unique, stored lowercase
	Email         string `json:"email"`    // unique
	PasswordHash  string `json:"-"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
	AuditFields

	// Refresh token state. Only the SHA-256 hash is persisted; never serialized.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
