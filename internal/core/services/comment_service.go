package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// CommentService implements comment operations with ownership checks on
// edit and delete.
type CommentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	videoRepo   portsrepo.VideoRepositoryFacade
}

func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, videoRepo portsrepo.VideoRepositoryFacade) portssvc.CommentSvcFacade {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

var _ portssvc.CommentSvcFacade = (*CommentService)(nil)

func (s *CommentService) AddComment(ctx context.Context, videoID, requesterID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content must not be blank: %w", apperrors.ErrValidation)
	}

	// The video must exist; commenting on a deleted video is a 404.
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return nil, fmt.Errorf("failed to find video for comment: %w", err)
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		Content:   content,
		VideoID:   videoID,
		OwnerID:   requesterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "failed to save comment", "video_id", videoID)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &comment, nil
}

func (s *CommentService) EditComment(ctx context.Context, commentID, requesterID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content must not be blank: %w", apperrors.ErrValidation)
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	if comment.OwnerID != requesterID {
		return nil, fmt.Errorf("user %s does not own comment %s: %w", requesterID, commentID, apperrors.ErrForbidden)
	}

	comment.Content = content
	comment.LastUpdatedAt = time.Now()

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		s.LogError(ctx, err, "failed to update comment", "comment_id", commentID)
		return nil, fmt.Errorf("failed to edit comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to find comment: %w", err)
	}
	if comment.OwnerID != requesterID {
		return fmt.Errorf("user %s does not own comment %s: %w", requesterID, commentID, apperrors.ErrForbidden)
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		s.LogError(ctx, err, "failed to delete comment", "comment_id", commentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
