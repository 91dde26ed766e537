package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/middleware"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes (register/login/refresh)
	registerAuthRoutes(r, cfg, services)

	// Everything else requires an access token
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName))

	registerUserRoutes(v1, services.User, services.ReadModel)
	registerVideoRoutes(v1, services.Video, services.ReadModel)
	registerCommentRoutes(v1, services.Comment)
	registerLikeRoutes(v1, services.Like)
	registerSubscriptionRoutes(v1, services.Subscription)
	registerTweetRoutes(v1, services.Tweet)
	registerPlaylistRoutes(v1, services.Playlist)
}
