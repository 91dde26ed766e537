package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// LikeService implements like/unlike across videos, comments and tweets.
// The target is verified to exist before an edge is written, so likes
// never point at deleted entities.
type LikeService struct {
	BaseService
	likeRepo    portsrepo.LikeRepositoryFacade
	videoRepo   portsrepo.VideoReader
	commentRepo portsrepo.CommentRepositoryFacade
	tweetRepo   portsrepo.TweetRepositoryFacade
}

func NewLikeService(
	likeRepo portsrepo.LikeRepositoryFacade,
	videoRepo portsrepo.VideoReader,
	commentRepo portsrepo.CommentRepositoryFacade,
	tweetRepo portsrepo.TweetRepositoryFacade,
) portssvc.LikeSvcFacade {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

var _ portssvc.LikeSvcFacade = (*LikeService)(nil)

func (s *LikeService) verifyTargetExists(ctx context.Context, target domain.LikeTarget, targetID string) error {
	var err error
	switch target {
	case domain.LikeTargetVideo:
		_, err = s.videoRepo.FindVideoByID(ctx, targetID)
	case domain.LikeTargetComment:
		_, err = s.commentRepo.FindCommentByID(ctx, targetID)
	case domain.LikeTargetTweet:
		_, err = s.tweetRepo.FindTweetByID(ctx, targetID)
	default:
		return fmt.Errorf("unknown like target %q: %w", target, apperrors.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("failed to verify like target: %w", err)
	}
	return nil
}

func (s *LikeService) Like(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) (*domain.Like, error) {
	if err := s.verifyTargetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	like := domain.Like{
		LikeID:    uuid.NewString(),
		LikedBy:   likedBy,
		CreatedAt: time.Now(),
	}
	switch target {
	case domain.LikeTargetVideo:
		like.VideoID = &targetID
	case domain.LikeTargetComment:
		like.CommentID = &targetID
	case domain.LikeTargetTweet:
		like.TweetID = &targetID
	}

	// On a duplicate like the repository hands back the already-persisted
	// edge's ID, so the response always names a real row.
	likeID, err := s.likeRepo.SaveLike(ctx, like)
	if err != nil {
		s.LogError(ctx, err, "failed to save like", "target", string(target), "target_id", targetID)
		return nil, fmt.Errorf("failed to like: %w", err)
	}
	like.LikeID = likeID

	return &like, nil
}

func (s *LikeService) Unlike(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) error {
	if err := s.likeRepo.DeleteLike(ctx, target, targetID, likedBy); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "failed to delete like", "target", string(target), "target_id", targetID)
		return fmt.Errorf("failed to unlike: %w", err)
	}
	return nil
}
