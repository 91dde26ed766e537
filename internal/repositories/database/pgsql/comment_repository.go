package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
)

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db PgxPool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (comment_id, content, video_id, owner_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.Content,
		comment.VideoID,
		comment.OwnerID,
		comment.CreatedAt,
		comment.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, content, video_id, owner_id, created_at, last_updated_at
		FROM comments WHERE comment_id = $1;
	`
	var c domain.Comment
	err := r.Pool.QueryRow(ctx, query, commentID).Scan(
		&c.CommentID,
		&c.Content,
		&c.VideoID,
		&c.OwnerID,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}
	return &c, nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	query := `UPDATE comments SET content = $1, last_updated_at = $2 WHERE comment_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, comment.Content, comment.LastUpdatedAt, comment.CommentID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
