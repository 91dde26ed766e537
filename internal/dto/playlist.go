package dto

import (
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// CreatePlaylistRequest creates a playlist, optionally seeded with a video.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	VideoID     string `json:"videoID"`
}

// PlaylistResponse is the client-facing projection of a playlist.
type PlaylistResponse struct {
	PlaylistID  string   `json:"playlistID"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	VideoIDs    []string `json:"videoIDs"`
	OwnerID     string   `json:"ownerID"`
}

// ToPlaylistResponse converts a domain.Playlist to its projection.
func ToPlaylistResponse(p *domain.Playlist) PlaylistResponse {
	videoIDs := p.VideoIDs
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return PlaylistResponse{
		PlaylistID:  p.PlaylistID,
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    videoIDs,
		OwnerID:     p.OwnerID,
	}
}
