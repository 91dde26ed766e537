package dto

import (
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// AddCommentRequest carries the comment body; the video comes from the path.
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// EditCommentRequest replaces a comment's content.
type EditCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the client-facing projection of a comment.
type CommentResponse struct {
	CommentID string    `json:"commentID"`
	Content   string    `json:"content"`
	VideoID   string    `json:"videoID"`
	OwnerID   string    `json:"ownerID"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCommentResponse converts a domain.Comment to its projection.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		Content:   c.Content,
		VideoID:   c.VideoID,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
	}
}
