package dto

import (
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// UploadVideoRequest defines the multipart form fields for a video upload.
// DurationSeconds is supplied by the client since the object store does
// not probe media metadata.
type UploadVideoRequest struct {
	Title           string  `form:"title" binding:"required"`
	Description     string  `form:"description" binding:"required"`
	DurationSeconds float64 `form:"durationSeconds"`
}

// UpdateVideoDetailsRequest updates title/description; TogglePublish flips
// the published flag when true.
type UpdateVideoDetailsRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	TogglePublish bool    `json:"togglePublish"`
}

// VideoResponse is the client-facing projection of a video record.
type VideoResponse struct {
	VideoID         string    `json:"videoID"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"videoURL"`
	ThumbnailURL    string    `json:"thumbnailURL"`
	DurationSeconds float64   `json:"durationSeconds"`
	Views           int64     `json:"views"`
	IsPublished     bool      `json:"isPublished"`
	OwnerID         string    `json:"ownerID"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToVideoResponse converts a domain.Video to its client-facing projection.
func ToVideoResponse(v *domain.Video) VideoResponse {
	return VideoResponse{
		VideoID:         v.VideoID,
		Title:           v.Title,
		Description:     v.Description,
		VideoURL:        v.VideoURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		IsPublished:     v.IsPublished,
		OwnerID:         v.OwnerID,
		CreatedAt:       v.CreatedAt,
	}
}
