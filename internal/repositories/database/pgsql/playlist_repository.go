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

type PgxPlaylistRepository struct {
	BaseRepository
}

func newPgxPlaylistRepository(db PgxPool) portsrepo.PlaylistRepositoryFacade {
	return &PgxPlaylistRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PlaylistRepositoryFacade = (*PgxPlaylistRepository)(nil)

// SavePlaylist writes the playlist row and any seed membership rows in a
// single transaction, so a half-created playlist never becomes visible.
func (r *PgxPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertPlaylist := `
        INSERT INTO playlists (playlist_id, name, description, owner_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err = tx.Exec(ctx, insertPlaylist,
		playlist.PlaylistID,
		playlist.Name,
		playlist.Description,
		playlist.OwnerID,
		playlist.CreatedAt,
		playlist.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}

	insertVideo := `
        INSERT INTO playlist_videos (playlist_id, video_id)
        VALUES ($1, $2)
        ON CONFLICT (playlist_id, video_id) DO NOTHING;
    `
	for _, videoID := range playlist.VideoIDs {
		if _, err := tx.Exec(ctx, insertVideo, playlist.PlaylistID, videoID); err != nil {
			return fmt.Errorf("failed to save playlist video %s: %w", videoID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	query := `
		SELECT playlist_id, name, description, owner_id, created_at, last_updated_at
		FROM playlists WHERE playlist_id = $1;
	`
	var p domain.Playlist
	err := r.Pool.QueryRow(ctx, query, playlistID).Scan(
		&p.PlaylistID,
		&p.Name,
		&p.Description,
		&p.OwnerID,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find playlist by ID %s: %w", playlistID, err)
	}

	videosQuery := `SELECT video_id FROM playlist_videos WHERE playlist_id = $1 ORDER BY added_at ASC;`
	rows, err := r.Pool.Query(ctx, videosQuery, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	defer rows.Close()

	p.VideoIDs = []string{}
	for rows.Next() {
		var videoID string
		if err := rows.Scan(&videoID); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video row: %w", err)
		}
		p.VideoIDs = append(p.VideoIDs, videoID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating playlist video rows: %w", rows.Err())
	}

	return &p, nil
}

func (r *PgxPlaylistRepository) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error {
	query := `
        INSERT INTO playlist_videos (playlist_id, video_id)
        VALUES ($1, $2)
        ON CONFLICT (playlist_id, video_id) DO NOTHING;
    `
	_, err := r.Pool.Exec(ctx, query, playlistID, videoID)
	if err != nil {
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}
	return nil
}

func (r *PgxPlaylistRepository) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) error {
	query := `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, playlistID, videoID)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not in playlist: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeletePlaylist removes the playlist row; membership rows go with it via
// ON DELETE CASCADE.
func (r *PgxPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	query := `DELETE FROM playlists WHERE playlist_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, playlistID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("playlist not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
