package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// CommentSvcFacade defines operations on comments.
type CommentSvcFacade interface {
	// AddComment creates a comment on a video, owned by the requester.
	AddComment(ctx context.Context, videoID, requesterID, content string) (*domain.Comment, error)

	// EditComment replaces the content of the requester's own comment.
	EditComment(ctx context.Context, commentID, requesterID, content string) (*domain.Comment, error)

	// DeleteComment removes the requester's own comment.
	DeleteComment(ctx context.Context, commentID, requesterID string) error
}
