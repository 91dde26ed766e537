package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// ReadModelRepository builds the denormalized, response-shaped views by
// joining users, videos, comments, likes and subscriptions.
type ReadModelRepository interface {
	// GetChannelProfile composes a channel page for the given (lowercase)
	// username. requesterID may be empty; it only drives IsSubscribed.
	GetChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error)

	// GetVideoDetail composes the single-video page: owner block with
	// subscriber stats, like count and the nested comment list.
	GetVideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error)

	// GetFeed lists published videos, newest first, each with the owner's
	// public profile and like count.
	GetFeed(ctx context.Context) ([]domain.FeedItem, error)

	// GetWatchHistory lists the user's watched videos, most recent first.
	// History entries whose video has been deleted are skipped.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)
}
