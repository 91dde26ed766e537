package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// CommentHandler handles comment CRUD on videos.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(cs portssvc.CommentSvcFacade) *CommentHandler {
	return &CommentHandler{commentService: cs}
}

// registerCommentRoutes sets up the authenticated comment routes.
func registerCommentRoutes(rg *gin.RouterGroup, cs portssvc.CommentSvcFacade) {
	h := NewCommentHandler(cs)

	comments := rg.Group("/comments")
	{
		comments.POST("/:videoID", h.Add)
		comments.PATCH("/c/:commentID", h.Edit)
		comments.DELETE("/c/:commentID", h.Delete)
	}
}

// Add creates a comment on the video in the path.
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	videoID, ok := requireIDParam(c, "videoID")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Comment content is required")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), videoID, userID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to add comment")
		return
	}

	respondOK(c, http.StatusCreated, "Comment added successfully", dto.ToCommentResponse(comment))
}

// Edit replaces the content of the requester's own comment.
func (h *CommentHandler) Edit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	commentID, ok := requireIDParam(c, "commentID")
	if !ok {
		return
	}

	var req dto.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Comment content is required")
		return
	}

	comment, err := h.commentService.EditComment(c.Request.Context(), commentID, userID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to edit comment")
		return
	}

	respondOK(c, http.StatusOK, "Comment updated successfully", dto.ToCommentResponse(comment))
}

// Delete removes the requester's own comment.
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	commentID, ok := requireIDParam(c, "commentID")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}

	respondOK(c, http.StatusOK, "Comment deleted successfully", nil)
}
