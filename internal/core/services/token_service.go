package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
	"github.com/VidTubeHQ/vidtube_backend/internal/utils"
)

// TokenService issues access tokens and manages the refresh token
// lifecycle. Refresh tokens are JWTs signed with a separate secret; only
// their SHA-256 hash is persisted on the user record, so a single token is
// valid per user and rotation invalidates the previous one.
type TokenService struct {
	BaseService
	userSvc portssvc.UserSvcFacade

	jwtSecret          string
	jwtExpiry          time.Duration
	jwtIssuer          string
	refreshTokenSecret string
	refreshTokenExpiry time.Duration
}

func NewTokenService(userSvc portssvc.UserSvcFacade, cfg *config.Config) portssvc.TokenSvcFacade {
	return &TokenService{
		userSvc:            userSvc,
		jwtSecret:          cfg.JWTSecret,
		jwtExpiry:          cfg.JWTExpiry,
		jwtIssuer:          cfg.JWTIssuer,
		refreshTokenSecret: cfg.RefreshTokenSecret,
		refreshTokenExpiry: cfg.RefreshTokenExpiry,
	}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.jwtExpiry)
	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", "user_id", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *TokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.refreshTokenExpiry)
	token, err := utils.GenerateRefreshJWT(user.UserID, s.refreshTokenSecret, s.refreshTokenExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate refresh token", "user_id", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userSvc.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(token), expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return token, expiryTime, nil
}

// ValidateRefreshToken parses the token to identify the user, then checks
// the presented token against the stored hash and expiry. Any mismatch is
// reported as an expired-token error so clients re-authenticate.
func (s *TokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.refreshTokenSecret)
	if err != nil {
		s.LogWarn(ctx, "refresh token failed signature validation", "error", err.Error())
		return nil, apperrors.ErrRefreshTokenExpired
	}

	userID := claims.Subject
	if userID == "" {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, apperrors.ErrRefreshTokenExpired
		}
		return nil, fmt.Errorf("failed to load user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		s.LogWarn(ctx, "refresh token does not match stored hash", "user_id", userID)
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return user, nil
}
