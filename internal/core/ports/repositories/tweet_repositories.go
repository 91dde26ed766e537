package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// TweetRepositoryFacade defines persistence operations for tweets.
type TweetRepositoryFacade interface {
	// SaveTweet persists a new tweet.
	SaveTweet(ctx context.Context, tweet domain.Tweet) error

	// FindTweetByID retrieves a tweet by its ID.
	FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error)

	// FindTweetsByOwner lists a user's tweets, newest first.
	FindTweetsByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error)

	// UpdateTweet replaces a tweet's content.
	UpdateTweet(ctx context.Context, tweet domain.Tweet) error

	// DeleteTweet removes a tweet row.
	DeleteTweet(ctx context.Context, tweetID string) error
}
