package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/ports"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// VideoService implements the video lifecycle. Every mutation loads the
// record and checks ownership before touching storage or the media host.
type VideoService struct {
	BaseService
	videoRepo portsrepo.VideoRepositoryFacade
	media     ports.MediaStore
}

func NewVideoService(videoRepo portsrepo.VideoRepositoryFacade, media ports.MediaStore) portssvc.VideoSvcFacade {
	return &VideoService{videoRepo: videoRepo, media: media}
}

var _ portssvc.VideoSvcFacade = (*VideoService)(nil)

func (s *VideoService) UploadVideo(ctx context.Context, ownerID string, req dto.UploadVideoRequest, videoFile, thumbnail dto.FileUpload) (*domain.Video, error) {
	videoURL, err := s.media.Upload(ctx, mediaKey("videos", videoFile.Filename), videoFile.Reader, videoFile.ContentType)
	if err != nil {
		s.LogError(ctx, err, "failed to upload video file", "owner_id", ownerID)
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	thumbnailURL, err := s.media.Upload(ctx, mediaKey("thumbnails", thumbnail.Filename), thumbnail.Reader, thumbnail.ContentType)
	if err != nil {
		s.cleanupAsset(ctx, videoURL)
		s.LogError(ctx, err, "failed to upload thumbnail", "owner_id", ownerID)
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	now := time.Now()
	video := domain.Video{
		VideoID:         uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        videoURL,
		ThumbnailURL:    thumbnailURL,
		DurationSeconds: req.DurationSeconds,
		Views:           0,
		IsPublished:     true,
		OwnerID:         ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.videoRepo.SaveVideo(ctx, video); err != nil {
		s.cleanupAsset(ctx, videoURL)
		s.cleanupAsset(ctx, thumbnailURL)
		s.LogError(ctx, err, "failed to save video", "owner_id", ownerID)
		return nil, fmt.Errorf("failed to save video: %w", err)
	}

	s.LogInfo(ctx, "video uploaded", "video_id", video.VideoID, "owner_id", ownerID)
	return &video, nil
}

func (s *VideoService) GetVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

// findOwnedVideo loads a video and verifies the requester owns it.
func (s *VideoService) findOwnedVideo(ctx context.Context, videoID, requesterID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	if video.OwnerID != requesterID {
		return nil, fmt.Errorf("user %s does not own video %s: %w", requesterID, videoID, apperrors.ErrForbidden)
	}
	return video, nil
}

func (s *VideoService) UpdateVideoDetails(ctx context.Context, videoID, requesterID string, req dto.UpdateVideoDetailsRequest) (*domain.Video, error) {
	video, err := s.findOwnedVideo(ctx, videoID, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.TogglePublish {
		video.IsPublished = !video.IsPublished
	}
	video.LastUpdatedAt = time.Now()

	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		s.LogError(ctx, err, "failed to update video details", "video_id", videoID)
		return nil, fmt.Errorf("failed to update video details: %w", err)
	}

	return video, nil
}

func (s *VideoService) UpdateVideoFile(ctx context.Context, videoID, requesterID string, file dto.FileUpload, durationSeconds float64) (*domain.Video, error) {
	video, err := s.findOwnedVideo(ctx, videoID, requesterID)
	if err != nil {
		return nil, err
	}

	newURL, err := s.media.Upload(ctx, mediaKey("videos", file.Filename), file.Reader, file.ContentType)
	if err != nil {
		s.LogError(ctx, err, "failed to upload replacement video file", "video_id", videoID)
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	oldURL := video.VideoURL
	video.VideoURL = newURL
	video.DurationSeconds = durationSeconds
	video.LastUpdatedAt = time.Now()

	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		s.cleanupAsset(ctx, newURL)
		s.LogError(ctx, err, "failed to update video file URL", "video_id", videoID)
		return nil, fmt.Errorf("failed to update video file: %w", err)
	}

	s.cleanupAsset(ctx, oldURL)
	return video, nil
}

func (s *VideoService) UpdateThumbnail(ctx context.Context, videoID, requesterID string, file dto.FileUpload) (*domain.Video, error) {
	video, err := s.findOwnedVideo(ctx, videoID, requesterID)
	if err != nil {
		return nil, err
	}

	newURL, err := s.media.Upload(ctx, mediaKey("thumbnails", file.Filename), file.Reader, file.ContentType)
	if err != nil {
		s.LogError(ctx, err, "failed to upload replacement thumbnail", "video_id", videoID)
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	oldURL := video.ThumbnailURL
	video.ThumbnailURL = newURL
	video.LastUpdatedAt = time.Now()

	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		s.cleanupAsset(ctx, newURL)
		s.LogError(ctx, err, "failed to update thumbnail URL", "video_id", videoID)
		return nil, fmt.Errorf("failed to update thumbnail: %w", err)
	}

	s.cleanupAsset(ctx, oldURL)
	return video, nil
}

// DeleteVideo removes the record first, then its hosted assets. The record
// is authoritative: once it is gone the assets are unreachable orphans at
// worst, never dangling references.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID, requesterID string) error {
	video, err := s.findOwnedVideo(ctx, videoID, requesterID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		s.LogError(ctx, err, "failed to delete video", "video_id", videoID)
		return fmt.Errorf("failed to delete video: %w", err)
	}

	s.cleanupAsset(ctx, video.VideoURL)
	s.cleanupAsset(ctx, video.ThumbnailURL)

	s.LogInfo(ctx, "video deleted", "video_id", videoID, "owner_id", requesterID)
	return nil
}

func (s *VideoService) cleanupAsset(ctx context.Context, assetURL string) {
	if assetURL == "" {
		return
	}
	if err := s.media.Delete(ctx, assetURL); err != nil {
		s.LogWarn(ctx, "failed to delete hosted asset", "asset_url", assetURL, "error", err.Error())
	}
}
