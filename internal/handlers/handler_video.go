package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// VideoHandler handles the video lifecycle and the composed video views.
type VideoHandler struct {
	videoService portssvc.VideoSvcFacade
	readModel    portssvc.ReadModelSvcFacade
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(vs portssvc.VideoSvcFacade, rm portssvc.ReadModelSvcFacade) *VideoHandler {
	return &VideoHandler{videoService: vs, readModel: rm}
}

// registerVideoRoutes sets up the authenticated video routes.
func registerVideoRoutes(rg *gin.RouterGroup, vs portssvc.VideoSvcFacade, rm portssvc.ReadModelSvcFacade) {
	h := NewVideoHandler(vs, rm)

	videos := rg.Group("/videos")
	{
		videos.GET("", h.Feed)
		videos.POST("", h.Upload)
		videos.GET("/:videoID", h.Watch)
		videos.PATCH("/:videoID", h.UpdateDetails)
		videos.PATCH("/:videoID/video", h.UpdateVideoFile)
		videos.PATCH("/:videoID/thumbnail", h.UpdateThumbnail)
		videos.DELETE("/:videoID", h.Delete)
	}
}

// Feed lists published videos, newest first.
func (h *VideoHandler) Feed(c *gin.Context) {
	items, err := h.readModel.Feed(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch videos")
		return
	}
	respondOK(c, http.StatusOK, "Videos fetched successfully", items)
}

// Upload hosts the video and thumbnail files and creates the record.
func (h *VideoHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid upload form: "+err.Error())
		return
	}

	videoFile, closeVideo, err := formFileUpload(c, "videoFile")
	if err != nil {
		respondBadRequest(c, "Video file is required")
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := formFileUpload(c, "thumbnail")
	if err != nil {
		respondBadRequest(c, "Thumbnail file is required")
		return
	}
	defer closeThumb()

	video, err := h.videoService.UploadVideo(c.Request.Context(), userID, req, *videoFile, *thumbnail)
	if err != nil {
		respondError(c, err, "Failed to upload video")
		return
	}

	respondOK(c, http.StatusCreated, "Video uploaded successfully", dto.ToVideoResponse(video))
}

// Watch composes the full video page. It counts the view and records the
// watch in the requester's history.
func (h *VideoHandler) Watch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	detail, err := h.readModel.VideoDetail(c.Request.Context(), videoID, userID)
	if err != nil {
		respondError(c, err, "Video not found")
		return
	}

	respondOK(c, http.StatusOK, "Video fetched successfully", detail)
}

// UpdateDetails updates title/description and toggles publication.
func (h *VideoHandler) UpdateDetails(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	var req dto.UpdateVideoDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	video, err := h.videoService.UpdateVideoDetails(c.Request.Context(), videoID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to update video")
		return
	}

	respondOK(c, http.StatusOK, "Video updated successfully", dto.ToVideoResponse(video))
}

// UpdateVideoFile replaces the hosted video asset.
func (h *VideoHandler) UpdateVideoFile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	upload, closeFile, err := formFileUpload(c, "videoFile")
	if err != nil {
		respondBadRequest(c, "Video file is required")
		return
	}
	defer closeFile()

	durationSeconds, _ := strconv.ParseFloat(c.PostForm("durationSeconds"), 64)

	video, err := h.videoService.UpdateVideoFile(c.Request.Context(), videoID, userID, *upload, durationSeconds)
	if err != nil {
		respondError(c, err, "Failed to update video file")
		return
	}

	respondOK(c, http.StatusOK, "Video file updated successfully", dto.ToVideoResponse(video))
}

// UpdateThumbnail replaces the hosted thumbnail asset.
func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	upload, closeFile, err := formFileUpload(c, "thumbnail")
	if err != nil {
		respondBadRequest(c, "Thumbnail file is required")
		return
	}
	defer closeFile()

	video, err := h.videoService.UpdateThumbnail(c.Request.Context(), videoID, userID, *upload)
	if err != nil {
		respondError(c, err, "Failed to update thumbnail")
		return
	}

	respondOK(c, http.StatusOK, "Thumbnail updated successfully", dto.ToVideoResponse(video))
}

// Delete removes the video record and its hosted assets.
func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), videoID, userID); err != nil {
		respondError(c, err, "Failed to delete video")
		return
	}

	respondOK(c, http.StatusOK, "Video deleted successfully", nil)
}
