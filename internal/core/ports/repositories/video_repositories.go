package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// VideoReader defines read operations for video data
type VideoReader interface {
	// FindVideoByID retrieves a specific video by its ID.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)
}

// VideoWriter defines write operations for video data
type VideoWriter interface {
	// SaveVideo persists a new video.
	SaveVideo(ctx context.Context, video domain.Video) error

	// UpdateVideo updates a video's mutable fields.
	UpdateVideo(ctx context.Context, video domain.Video) error

	// DeleteVideo removes a video row.
	DeleteVideo(ctx context.Context, videoID string) error

	// IncrementViews bumps the view counter by one atomically.
	IncrementViews(ctx context.Context, videoID string) error
}

// VideoRepositoryFacade combines all video-related repository interfaces
type VideoRepositoryFacade interface {
	VideoReader
	VideoWriter
}
