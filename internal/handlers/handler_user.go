package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// UserHandler handles profile, credential and channel-page requests for
// the authenticated user.
type UserHandler struct {
	userService portssvc.UserSvcFacade
	readModel   portssvc.ReadModelSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade, rm portssvc.ReadModelSvcFacade) *UserHandler {
	return &UserHandler{userService: us, readModel: rm}
}

// registerUserRoutes sets up the authenticated user routes.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, rm portssvc.ReadModelSvcFacade) {
	h := NewUserHandler(us, rm)

	users := rg.Group("/users")
	{
		users.GET("/current-user", h.CurrentUser)
		users.PATCH("/change-password", h.ChangePassword)
		users.PATCH("/update-account", h.UpdateAccount)
		users.PATCH("/avatar", h.UpdateAvatar)
		users.PATCH("/cover-image", h.UpdateCoverImage)
		users.GET("/c/:username", h.ChannelProfile)
		users.GET("/history", h.WatchHistory)
	}
}

// CurrentUser returns the authenticated user's own projection.
func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch current user")
		return
	}

	respondOK(c, http.StatusOK, "Current user fetched successfully", dto.ToUserResponse(user))
}

// ChangePassword verifies the old password before storing the new one.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	respondOK(c, http.StatusOK, "Password changed successfully", nil)
}

// UpdateAccount updates fullname and/or email.
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Fullname == nil && req.Email == nil {
		respondBadRequest(c, "At least one field must be provided")
		return
	}

	user, err := h.userService.UpdateUserDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}

	respondOK(c, http.StatusOK, "Account updated successfully", dto.ToUserResponse(user))
}

// UpdateAvatar replaces the avatar asset.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateUserMedia(c, "avatar", h.userService.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage replaces the cover image asset.
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateUserMedia(c, "coverImage", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

// updateUserMedia is the shared avatar/cover-image replacement flow: read
// the multipart file, hand it to the service, return the fresh projection.
func (h *UserHandler) updateUserMedia(
	c *gin.Context,
	field string,
	update func(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error),
	message string,
) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	upload, closeFile, err := formFileUpload(c, field)
	if err != nil {
		respondBadRequest(c, "File field '"+field+"' is required")
		return
	}
	defer closeFile()

	user, err := update(c.Request.Context(), userID, *upload)
	if err != nil {
		respondError(c, err, "Failed to update "+field)
		return
	}

	respondOK(c, http.StatusOK, message, dto.ToUserResponse(user))
}

// ChannelProfile composes the public channel page for a username.
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	username := c.Param("username")
	profile, err := h.readModel.ChannelProfile(c.Request.Context(), username, userID)
	if err != nil {
		respondError(c, err, "Channel not found")
		return
	}

	respondOK(c, http.StatusOK, "Channel profile fetched successfully", profile)
}

// WatchHistory lists the authenticated user's watched videos.
func (h *UserHandler) WatchHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.readModel.WatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch watch history")
		return
	}

	respondOK(c, http.StatusOK, "Watch history fetched successfully", entries)
}
