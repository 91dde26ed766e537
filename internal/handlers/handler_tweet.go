package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// TweetHandler handles short text post CRUD.
type TweetHandler struct {
	tweetService portssvc.TweetSvcFacade
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(ts portssvc.TweetSvcFacade) *TweetHandler {
	return &TweetHandler{tweetService: ts}
}

// registerTweetRoutes sets up the authenticated tweet routes.
func registerTweetRoutes(rg *gin.RouterGroup, ts portssvc.TweetSvcFacade) {
	h := NewTweetHandler(ts)

	tweets := rg.Group("/tweets")
	{
		tweets.POST("", h.Create)
		tweets.GET("/user/:userID", h.ListByUser)
		tweets.PATCH("/:tweetID", h.Update)
		tweets.DELETE("/:tweetID", h.Delete)
	}
}

// Create posts a new tweet owned by the requester.
func (h *TweetHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Tweet content is required")
		return
	}

	tweet, err := h.tweetService.CreateTweet(c.Request.Context(), userID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to create tweet")
		return
	}

	respondOK(c, http.StatusCreated, "Tweet created successfully", dto.ToTweetResponse(tweet))
}

// ListByUser lists a user's tweets, newest first.
func (h *TweetHandler) ListByUser(c *gin.Context) {
	ownerID, ok := requireIDParam(c, "userID")
	if !ok {
		return
	}

	tweets, err := h.tweetService.ListTweetsByUser(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to fetch tweets")
		return
	}

	respondOK(c, http.StatusOK, "Tweets fetched successfully", dto.ToTweetListResponse(tweets))
}

// Update replaces the content of the requester's own tweet.
func (h *TweetHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tweetID, ok := requireIDParam(c, "tweetID")
	if !ok {
		return
	}

	var req dto.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Tweet content is required")
		return
	}

	tweet, err := h.tweetService.UpdateTweet(c.Request.Context(), tweetID, userID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to update tweet")
		return
	}

	respondOK(c, http.StatusOK, "Tweet updated successfully", dto.ToTweetResponse(tweet))
}

// Delete removes the requester's own tweet.
func (h *TweetHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tweetID, ok := requireIDParam(c, "tweetID")
	if !ok {
		return
	}

	if err := h.tweetService.DeleteTweet(c.Request.Context(), tweetID, userID); err != nil {
		respondError(c, err, "Failed to delete tweet")
		return
	}

	respondOK(c, http.StatusOK, "Tweet deleted successfully", nil)
}
