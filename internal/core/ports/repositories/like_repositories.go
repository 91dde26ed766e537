package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// LikeRepositoryFacade defines persistence operations for like edges.
type LikeRepositoryFacade interface {
	// SaveLike upserts a like edge and returns the ID of the persisted row.
	// The (likedBy, target) pair is unique; liking an already-liked target
	// returns the existing edge's ID rather than inserting a second row.
	SaveLike(ctx context.Context, like domain.Like) (string, error)

	// DeleteLike removes the edge from likedBy to the given target. Returns
	// apperrors.ErrNotFound when no such edge exists.
	DeleteLike(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) error
}
