package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// LikeHandler handles like/unlike across videos, comments and tweets.
type LikeHandler struct {
	likeService portssvc.LikeSvcFacade
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(ls portssvc.LikeSvcFacade) *LikeHandler {
	return &LikeHandler{likeService: ls}
}

// registerLikeRoutes sets up the authenticated like routes. The single
// path letter mirrors the comment routes: v=video, c=comment, t=tweet.
func registerLikeRoutes(rg *gin.RouterGroup, ls portssvc.LikeSvcFacade) {
	h := NewLikeHandler(ls)

	likes := rg.Group("/likes")
	{
		likes.POST("/v/:targetID", h.like(domain.LikeTargetVideo))
		likes.DELETE("/v/:targetID", h.unlike(domain.LikeTargetVideo))
		likes.POST("/c/:targetID", h.like(domain.LikeTargetComment))
		likes.DELETE("/c/:targetID", h.unlike(domain.LikeTargetComment))
		likes.POST("/t/:targetID", h.like(domain.LikeTargetTweet))
		likes.DELETE("/t/:targetID", h.unlike(domain.LikeTargetTweet))
	}
}

func (h *LikeHandler) like(target domain.LikeTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		targetID, ok := requireIDParam(c, "targetID")
		if !ok {
			return
		}

		like, err := h.likeService.Like(c.Request.Context(), target, targetID, userID)
		if err != nil {
			respondError(c, err, "Failed to like")
			return
		}

		respondOK(c, http.StatusCreated, "Liked successfully", like)
	}
}

func (h *LikeHandler) unlike(target domain.LikeTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		targetID, ok := requireIDParam(c, "targetID")
		if !ok {
			return
		}

		if err := h.likeService.Unlike(c.Request.Context(), target, targetID, userID); err != nil {
			respondError(c, err, "Failed to unlike")
			return
		}

		respondOK(c, http.StatusOK, "Unliked successfully", nil)
	}
}
