package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// CommentRepositoryFacade defines persistence operations for comments.
type CommentRepositoryFacade interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// FindCommentByID retrieves a comment by its ID.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// UpdateComment replaces a comment's content.
	UpdateComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment row.
	DeleteComment(ctx context.Context, commentID string) error
}
