package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// PlaylistSvcFacade defines operations on playlists.
type PlaylistSvcFacade interface {
	// CreatePlaylist creates a playlist owned by the requester, optionally
	// seeded with a first video.
	CreatePlaylist(ctx context.Context, requesterID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error)

	// GetPlaylistByID retrieves a playlist and its video IDs.
	GetPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// AddVideo adds a video to the requester's own playlist (set semantics).
	AddVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.Playlist, error)

	// RemoveVideo removes a video from the requester's own playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.Playlist, error)

	// DeletePlaylist removes the requester's own playlist.
	DeletePlaylist(ctx context.Context, playlistID, requesterID string) error
}
