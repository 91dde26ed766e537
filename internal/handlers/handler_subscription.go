package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// SubscriptionHandler handles subscribing to and unsubscribing from
// channels.
type SubscriptionHandler struct {
	subService portssvc.SubscriptionSvcFacade
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *SubscriptionHandler {
	return &SubscriptionHandler{subService: ss}
}

// registerSubscriptionRoutes sets up the authenticated subscription routes.
func registerSubscriptionRoutes(rg *gin.RouterGroup, ss portssvc.SubscriptionSvcFacade) {
	h := NewSubscriptionHandler(ss)

	subs := rg.Group("/subscriptions")
	{
		subs.POST("/c/:channelID", h.Subscribe)
		subs.DELETE("/c/:channelID", h.Unsubscribe)
	}
}

// Subscribe adds the requester as a subscriber of the channel.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	channelID, ok := requireIDParam(c, "channelID")
	if !ok {
		return
	}

	sub, err := h.subService.Subscribe(c.Request.Context(), userID, channelID)
	if err != nil {
		respondError(c, err, "Failed to subscribe")
		return
	}

	respondOK(c, http.StatusCreated, "Subscribed successfully", sub)
}

// Unsubscribe removes the requester's subscription to the channel.
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	channelID, ok := requireIDParam(c, "channelID")
	if !ok {
		return
	}

	if err := h.subService.Unsubscribe(c.Request.Context(), userID, channelID); err != nil {
		respondError(c, err, "Failed to unsubscribe")
		return
	}

	respondOK(c, http.StatusOK, "Unsubscribed successfully", nil)
}
