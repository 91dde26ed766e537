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

type PgxLikeRepository struct {
	BaseRepository
}

func newPgxLikeRepository(db PgxPool) portsrepo.LikeRepositoryFacade {
	return &PgxLikeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LikeRepositoryFacade = (*PgxLikeRepository)(nil)

// targetColumn maps a like target kind to its column name.
func targetColumn(target domain.LikeTarget) (string, error) {
	switch target {
	case domain.LikeTargetVideo:
		return "video_id", nil
	case domain.LikeTargetComment:
		return "comment_id", nil
	case domain.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q: %w", target, apperrors.ErrValidation)
	}
}

// SaveLike upserts a like edge. Partial unique indexes on
// (liked_by, video_id), (liked_by, comment_id) and (liked_by, tweet_id)
// guarantee at most one edge per (user, target). On a duplicate the insert
// is skipped and the existing edge's ID is returned, so callers never see
// a like_id that was not persisted.
func (r *PgxLikeRepository) SaveLike(ctx context.Context, like domain.Like) (string, error) {
	query := `
        INSERT INTO likes (like_id, video_id, comment_id, tweet_id, liked_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT DO NOTHING
        RETURNING like_id;
    `
	var likeID string
	err := r.Pool.QueryRow(ctx, query,
		like.LikeID,
		like.VideoID,
		like.CommentID,
		like.TweetID,
		like.LikedBy,
		like.CreatedAt,
	).Scan(&likeID)
	if err == nil {
		return likeID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to save like: %w", err)
	}

	// ON CONFLICT DO NOTHING returns no row on a duplicate; fetch the
	// existing edge instead.
	column, targetID, err := likeTargetColumn(like)
	if err != nil {
		return "", err
	}
	existing := fmt.Sprintf(`SELECT like_id FROM likes WHERE %s = $1 AND liked_by = $2;`, column)
	if err := r.Pool.QueryRow(ctx, existing, targetID, like.LikedBy).Scan(&likeID); err != nil {
		return "", fmt.Errorf("failed to load existing like: %w", err)
	}
	return likeID, nil
}

// likeTargetColumn resolves which of the three target columns is set.
func likeTargetColumn(like domain.Like) (string, string, error) {
	switch {
	case like.VideoID != nil:
		return "video_id", *like.VideoID, nil
	case like.CommentID != nil:
		return "comment_id", *like.CommentID, nil
	case like.TweetID != nil:
		return "tweet_id", *like.TweetID, nil
	default:
		return "", "", fmt.Errorf("like has no target: %w", apperrors.ErrValidation)
	}
}

func (r *PgxLikeRepository) DeleteLike(ctx context.Context, target domain.LikeTarget, targetID, likedBy string) error {
	column, err := targetColumn(target)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM likes WHERE %s = $1 AND liked_by = $2;`, column)
	cmdTag, err := r.Pool.Exec(ctx, query, targetID, likedBy)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("like not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
