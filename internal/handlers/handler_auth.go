package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
	"github.com/VidTubeHQ/vidtube_backend/internal/middleware"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
)

// AuthHandler handles registration, login, logout and token refresh.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, tokenService: ts, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// refresh are rate limited per IP since they handle credentials.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// 10 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	users := r.Group("/api/v1/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", limitMiddleware, h.Login)
		users.POST("/refresh-token", limitMiddleware, h.RefreshToken)
	}

	authed := r.Group("/api/v1/users", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName))
	{
		authed.POST("/logout", h.Logout)
	}
}

// Register creates an account from a multipart form carrying the profile
// fields plus a required avatar and optional cover image.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid registration form: "+err.Error())
		return
	}

	avatar, closeAvatar, err := formFileUpload(c, "avatar")
	if err != nil {
		respondBadRequest(c, "Avatar file is required")
		return
	}
	defer closeAvatar()

	var coverImage *dto.FileUpload
	if upload, closeCover, err := formFileUpload(c, "coverImage"); err == nil {
		coverImage = upload
		defer closeCover()
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req, *avatar, coverImage)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", dto.ToUserResponse(user))
}

// Login authenticates by username or email and returns both tokens, also
// setting them as http-only cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err, "Invalid credentials")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	h.setTokenCookies(c, accessToken, refreshToken, refreshExpiry)

	respondOK(c, http.StatusOK, "Login successful", dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout clears the stored refresh token and both cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}

	h.clearTokenCookies(c)
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}

// RefreshToken rotates the token pair. The refresh token is read from the
// cookie or, failing that, from the request body.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			respondBadRequest(c, "Refresh token is required")
			return
		}
		refreshToken = req.RefreshToken
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err, "Invalid or expired refresh token")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	newRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	h.setTokenCookies(c, accessToken, newRefreshToken, refreshExpiry)

	respondOK(c, http.StatusOK, "Token refreshed successfully", dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	})
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string, refreshExpiry time.Time) {
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, int(h.cfg.JWTExpiry.Seconds()), "/", "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(time.Until(refreshExpiry).Seconds()), "/", "", secure, true)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, "/", "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", secure, true)
}
