package dto

import (
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// CreateTweetRequest carries a new tweet's content.
type CreateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateTweetRequest replaces a tweet's content.
type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// TweetResponse is the client-facing projection of a tweet.
type TweetResponse struct {
	TweetID   string    `json:"tweetID"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerID"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTweetResponse converts a domain.Tweet to its projection.
func ToTweetResponse(t *domain.Tweet) TweetResponse {
	return TweetResponse{
		TweetID:   t.TweetID,
		Content:   t.Content,
		OwnerID:   t.OwnerID,
		CreatedAt: t.CreatedAt,
	}
}

// ToTweetListResponse converts a slice of tweets.
func ToTweetListResponse(tweets []domain.Tweet) []TweetResponse {
	out := make([]TweetResponse, len(tweets))
	for i := range tweets {
		out[i] = ToTweetResponse(&tweets[i])
	}
	return out
}
