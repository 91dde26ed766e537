package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// PlaylistRepositoryFacade defines persistence operations for playlists.
type PlaylistRepositoryFacade interface {
	// SavePlaylist persists a new playlist (with any initial videos).
	SavePlaylist(ctx context.Context, playlist domain.Playlist) error

	// FindPlaylistByID retrieves a playlist and its video IDs.
	FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// AddVideoToPlaylist adds a video with set semantics (no duplicates).
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error

	// RemoveVideoFromPlaylist drops a video from the set.
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) error

	// DeletePlaylist removes the playlist and its membership rows.
	DeletePlaylist(ctx context.Context, playlistID string) error
}
