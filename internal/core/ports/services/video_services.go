package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// VideoSvcFacade defines operations on videos. Every mutation takes the
// requesting user's ID explicitly and enforces ownership.
type VideoSvcFacade interface {
	// UploadVideo hosts both assets and persists the video record. Staged
	// uploads are removed again when the record cannot be saved.
	UploadVideo(ctx context.Context, ownerID string, req dto.UploadVideoRequest, videoFile, thumbnail dto.FileUpload) (*domain.Video, error)

	// GetVideoByID retrieves a single video record.
	GetVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// UpdateVideoDetails updates title/description and toggles publication.
	UpdateVideoDetails(ctx context.Context, videoID, requesterID string, req dto.UpdateVideoDetailsRequest) (*domain.Video, error)

	// UpdateVideoFile replaces the hosted video asset.
	UpdateVideoFile(ctx context.Context, videoID, requesterID string, file dto.FileUpload, durationSeconds float64) (*domain.Video, error)

	// UpdateThumbnail replaces the hosted thumbnail asset.
	UpdateThumbnail(ctx context.Context, videoID, requesterID string, file dto.FileUpload) (*domain.Video, error)

	// DeleteVideo removes the record, then its hosted assets.
	DeleteVideo(ctx context.Context, videoID, requesterID string) error
}
