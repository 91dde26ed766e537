package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// LikeSvcFacade defines like/unlike operations over videos, comments and
// tweets.
type LikeSvcFacade interface {
	// Like records the user's like on the target. Liking an already-liked
	// target is a no-op; at most one edge exists per (user, target).
	Like(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) (*domain.Like, error)

	// Unlike removes the user's like from the target.
	Unlike(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) error
}
