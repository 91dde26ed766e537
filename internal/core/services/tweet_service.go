package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// TweetService implements tweet operations with ownership checks on
// update and delete.
type TweetService struct {
	BaseService
	tweetRepo portsrepo.TweetRepositoryFacade
}

func NewTweetService(tweetRepo portsrepo.TweetRepositoryFacade) portssvc.TweetSvcFacade {
	return &TweetService{tweetRepo: tweetRepo}
}

var _ portssvc.TweetSvcFacade = (*TweetService)(nil)

func (s *TweetService) CreateTweet(ctx context.Context, requesterID, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("tweet content must not be blank: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	tweet := domain.Tweet{
		TweetID: uuid.NewString(),
		Content: content,
		OwnerID: requesterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.tweetRepo.SaveTweet(ctx, tweet); err != nil {
		s.LogError(ctx, err, "failed to save tweet", "owner_id", requesterID)
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}

	return &tweet, nil
}

func (s *TweetService) ListTweetsByUser(ctx context.Context, userID string) ([]domain.Tweet, error) {
	tweets, err := s.tweetRepo.FindTweetsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, requesterID, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("tweet content must not be blank: %w", apperrors.ErrValidation)
	}

	tweet, err := s.tweetRepo.FindTweetByID(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tweet: %w", err)
	}
	if tweet.OwnerID != requesterID {
		return nil, fmt.Errorf("user %s does not own tweet %s: %w", requesterID, tweetID, apperrors.ErrForbidden)
	}

	tweet.Content = content
	tweet.LastUpdatedAt = time.Now()

	if err := s.tweetRepo.UpdateTweet(ctx, *tweet); err != nil {
		s.LogError(ctx, err, "failed to update tweet", "tweet_id", tweetID)
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}

	return tweet, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, requesterID string) error {
	tweet, err := s.tweetRepo.FindTweetByID(ctx, tweetID)
	if err != nil {
		return fmt.Errorf("failed to find tweet: %w", err)
	}
	if tweet.OwnerID != requesterID {
		return fmt.Errorf("user %s does not own tweet %s: %w", requesterID, tweetID, apperrors.ErrForbidden)
	}

	if err := s.tweetRepo.DeleteTweet(ctx, tweetID); err != nil {
		s.LogError(ctx, err, "failed to delete tweet", "tweet_id", tweetID)
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	return nil
}
