package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// TweetSvcFacade defines operations on tweets.
type TweetSvcFacade interface {
	// CreateTweet creates a tweet owned by the requester.
	CreateTweet(ctx context.Context, requesterID, content string) (*domain.Tweet, error)

	// ListTweetsByUser lists a user's tweets, newest first.
	ListTweetsByUser(ctx context.Context, userID string) ([]domain.Tweet, error)

	// UpdateTweet replaces the content of the requester's own tweet.
	UpdateTweet(ctx context.Context, tweetID, requesterID, content string) (*domain.Tweet, error)

	// DeleteTweet removes the requester's own tweet.
	DeleteTweet(ctx context.Context, tweetID, requesterID string) error
}
