package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// ReadModelSvcFacade composes the denormalized client-facing views.
// requesterID is threaded explicitly; it is never pulled from ambient
// state.
type ReadModelSvcFacade interface {
	// ChannelProfile composes a channel page by username (trimmed and
	// lowercased before lookup).
	ChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error)

	// VideoDetail composes the single-video page. It increments the view
	// counter and records the video in the requester's watch history before
	// composing the view.
	VideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error)

	// Feed lists published videos, newest first.
	Feed(ctx context.Context) ([]domain.FeedItem, error)

	// WatchHistory lists the user's watched videos, most recent first.
	WatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)
}
