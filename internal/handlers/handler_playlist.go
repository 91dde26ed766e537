package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// PlaylistHandler handles playlist CRUD and membership changes.
type PlaylistHandler struct {
	playlistService portssvc.PlaylistSvcFacade
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(ps portssvc.PlaylistSvcFacade) *PlaylistHandler {
	return &PlaylistHandler{playlistService: ps}
}

// registerPlaylistRoutes sets up the authenticated playlist routes.
func registerPlaylistRoutes(rg *gin.RouterGroup, ps portssvc.PlaylistSvcFacade) {
	h := NewPlaylistHandler(ps)

	playlists := rg.Group("/playlists")
	{
		playlists.POST("", h.Create)
		playlists.GET("/:playlistID", h.Get)
		playlists.POST("/:playlistID/videos/:videoID", h.AddVideo)
		playlists.DELETE("/:playlistID/videos/:videoID", h.RemoveVideo)
		playlists.DELETE("/:playlistID", h.Delete)
	}
}

// Create makes a playlist owned by the requester, optionally seeded with
// a first video.
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Playlist name is required")
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create playlist")
		return
	}

	respondOK(c, http.StatusCreated, "Playlist created successfully", dto.ToPlaylistResponse(playlist))
}

// Get retrieves a playlist and its video IDs.
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID, ok := requireIDParam(c, "playlistID")
	if !ok {
		return
	}

	playlist, err := h.playlistService.GetPlaylistByID(c.Request.Context(), playlistID)
	if err != nil {
		respondError(c, err, "Playlist not found")
		return
	}

	respondOK(c, http.StatusOK, "Playlist fetched successfully", dto.ToPlaylistResponse(playlist))
}

// AddVideo adds a video to the requester's own playlist.
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	playlistID, ok := requireIDParam(c, "playlistID")
	if !ok {
		return
	}
	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	playlist, err := h.playlistService.AddVideo(c.Request.Context(), playlistID, videoID, userID)
	if err != nil {
		respondError(c, err, "Failed to add video to playlist")
		return
	}

	respondOK(c, http.StatusOK, "Video added to playlist", dto.ToPlaylistResponse(playlist))
}

// RemoveVideo removes a video from the requester's own playlist.
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	playlistID, ok := requireIDParam(c, "playlistID")
	if !ok {
		return
	}
	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), playlistID, videoID, userID)
	if err != nil {
		respondError(c, err, "Failed to remove video from playlist")
		return
	}

	respondOK(c, http.StatusOK, "Video removed from playlist", dto.ToPlaylistResponse(playlist))
}

// Delete removes the requester's own playlist.
func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	playlistID, ok := requireIDParam(c, "playlistID")
	if !ok {
		return
	}

	if err := h.playlistService.DeletePlaylist(c.Request.Context(), playlistID, userID); err != nil {
		respondError(c, err, "Failed to delete playlist")
		return
	}

	respondOK(c, http.StatusOK, "Playlist deleted successfully", nil)
}
