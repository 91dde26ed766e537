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

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db PgxPool) portsrepo.VideoRepositoryFacade {
	return &PgxVideoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepositoryFacade = (*PgxVideoRepository)(nil)

const videoColumns = `video_id, title, description, video_url, thumbnail_url, duration_seconds,
		views, is_published, owner_id, created_at, last_updated_at`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.VideoID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.DurationSeconds,
		&v.Views,
		&v.IsPublished,
		&v.OwnerID,
		&v.CreatedAt,
		&v.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *PgxVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	query := `
        INSERT INTO videos (video_id, title, description, video_url, thumbnail_url, duration_seconds, views, is_published, owner_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		video.VideoID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.DurationSeconds,
		video.Views,
		video.IsPublished,
		video.OwnerID,
		video.CreatedAt,
		video.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save video: %w", err)
	}
	return nil
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE video_id = $1;`
	video, err := scanVideo(r.Pool.QueryRow(ctx, query, videoID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}
	return video, nil
}

func (r *PgxVideoRepository) UpdateVideo(ctx context.Context, video domain.Video) error {
	query := `
        UPDATE videos
        SET title = $1, description = $2, video_url = $3, thumbnail_url = $4,
            duration_seconds = $5, is_published = $6, last_updated_at = $7
        WHERE video_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.DurationSeconds,
		video.IsPublished,
		video.LastUpdatedAt,
		video.VideoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVideoRepository) DeleteVideo(ctx context.Context, videoID string) error {
	query := `DELETE FROM videos WHERE video_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// IncrementViews bumps the view counter atomically in the store; no
// read-modify-write cycle, so concurrent watches never lose counts.
func (r *PgxVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	query := `UPDATE videos SET views = views + 1 WHERE video_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
