package domain

import "time"

// Read-model rows: denormalized, response-shaped documents assembled by
// the read-model repository joins. They carry only public user fields.

// OwnerSummary is the public slice of a user nested inside composed views.
type OwnerSummary struct {
	UserID    string `json:"userID"`
	Fullname  string `json:"fullname"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarURL"`
}

// ChannelProfile is a user's public channel page with subscription stats.
type ChannelProfile struct {
	UserID            string `json:"userID"`
	Fullname          string `json:"fullname"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatarURL"`
	CoverImageURL     string `json:"coverImageURL,omitempty"`
	TotalSubscribers  int64  `json:"totalSubscribers"`
	TotalSubscribedTo int64  `json:"totalSubscribedTo"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// VideoOwner is the channel block nested in a video detail view.
type VideoOwner struct {
	OwnerSummary
	TotalSubscribers int64 `json:"totalSubscribers"`
	IsSubscribed     bool  `json:"isSubscribed"`
}

// CommentDetail is a comment nested in a video detail view, carrying the
// author's public profile and the comment's own like count.
type CommentDetail struct {
	CommentID string       `json:"commentID"`
	Content   string       `json:"content"`
	Author    OwnerSummary `json:"author"`
	LikeCount int64        `json:"likeCount"`
	CreatedAt time.Time    `json:"createdAt"`
}

// VideoDetail is the fully composed single-video page.
type VideoDetail struct {
	VideoID         string          `json:"videoID"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	VideoURL        string          `json:"videoURL"`
	DurationSeconds float64         `json:"durationSeconds"`
	Views           int64           `json:"views"`
	LikeCount       int64           `json:"likeCount"`
	Owner           VideoOwner      `json:"owner"`
	Comments        []CommentDetail `json:"comments"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// FeedItem is one published video in the public feed.
type FeedItem struct {
	VideoID         string       `json:"videoID"`
	Title           string       `json:"title"`
	ThumbnailURL    string       `json:"thumbnailURL"`
	DurationSeconds float64      `json:"durationSeconds"`
	Views           int64        `json:"views"`
	LikeCount       int64        `json:"likeCount"`
	Owner           OwnerSummary `json:"owner"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// WatchHistoryEntry is one previously watched video with its owner's
// public profile. Entries whose video has since been deleted are skipped
// by the history join.
type WatchHistoryEntry struct {
	VideoID         string       `json:"videoID"`
	Title           string       `json:"title"`
	ThumbnailURL    string       `json:"thumbnailURL"`
	DurationSeconds float64      `json:"durationSeconds"`
	Owner           OwnerSummary `json:"owner"`
	WatchedAt       time.Time    `json:"watchedAt"`
}
