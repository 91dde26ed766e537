package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/ports"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
	"github.com/VidTubeHQ/vidtube_backend/internal/utils"
)

// UserService implements account management: registration with media
// hosting, authentication, profile and credential updates.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	media    ports.MediaStore
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, media ports.MediaStore) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo, media: media}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// normalizeUsername trims surrounding whitespace and lowercases, so the
// same handle always maps to the same row regardless of input casing.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// mediaKey builds an object key under the given prefix, keeping the
// original file extension for content-type sniffing on the CDN side.
func mediaKey(prefix, filename string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar dto.FileUpload, coverImage *dto.FileUpload) (*domain.User, error) {
	username := normalizeUsername(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" {
		return nil, fmt.Errorf("username must not be blank: %w", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil && !errorsIsNotFound(err) {
		s.LogError(ctx, err, "failed to check for existing user")
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Host the media first; the record refers to hosted URLs only. Staged
	// uploads are removed again when the insert fails.
	avatarURL, err := s.media.Upload(ctx, mediaKey("avatars", avatar.Filename), avatar.Reader, avatar.ContentType)
	if err != nil {
		s.LogError(ctx, err, "failed to upload avatar")
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	coverImageURL := ""
	if coverImage != nil {
		coverImageURL, err = s.media.Upload(ctx, mediaKey("covers", coverImage.Filename), coverImage.Reader, coverImage.ContentType)
		if err != nil {
			s.cleanupAsset(ctx, avatarURL)
			s.LogError(ctx, err, "failed to upload cover image")
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Fullname:      req.Fullname,
		Username:      username,
		Email:         email,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.cleanupAsset(ctx, avatarURL)
		s.cleanupAsset(ctx, coverImageURL)
		s.LogError(ctx, err, "failed to save user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "user registered", "user_id", user.UserID, "username", user.Username)
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, normalizeUsername(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *UserService) AuthenticateUser(ctx context.Context, identifier, password string) (*domain.User, error) {
	normalized := normalizeUsername(identifier)
	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, normalized, strings.TrimSpace(identifier))
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user for authentication")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "password mismatch", "user_id", user.UserID)
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *UserService) UpdateUserDetails(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user details", "user_id", userID)
		return nil, fmt.Errorf("failed to update user details: %w", err)
	}

	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("old password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		s.LogError(ctx, err, "failed to store new password hash", "user_id", userID)
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.LogInfo(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error) {
	return s.replaceUserAsset(ctx, userID, file, "avatars", func(u *domain.User) *string { return &u.AvatarURL })
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error) {
	return s.replaceUserAsset(ctx, userID, file, "covers", func(u *domain.User) *string { return &u.CoverImageURL })
}

// replaceUserAsset hosts the new asset, points the record at it, then
// removes the old asset. The old asset is deleted last so a failed update
// never leaves the record with a dangling URL.
func (s *UserService) replaceUserAsset(ctx context.Context, userID string, file dto.FileUpload, prefix string, field func(*domain.User) *string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for media update: %w", err)
	}

	newURL, err := s.media.Upload(ctx, mediaKey(prefix, file.Filename), file.Reader, file.ContentType)
	if err != nil {
		s.LogError(ctx, err, "failed to upload user media", "user_id", userID)
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	oldURL := *field(user)
	*field(user) = newURL
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.cleanupAsset(ctx, newURL)
		s.LogError(ctx, err, "failed to update user media URL", "user_id", userID)
		return nil, fmt.Errorf("failed to update media: %w", err)
	}

	s.cleanupAsset(ctx, oldURL)
	return user, nil
}

func (s *UserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "failed to update refresh token", "user_id", userID)
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to clear refresh token", "user_id", userID)
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// cleanupAsset best-effort deletes a hosted asset; failures are logged,
// not propagated, since the orphaned object is harmless.
func (s *UserService) cleanupAsset(ctx context.Context, assetURL string) {
	if assetURL == "" {
		return
	}
	if err := s.media.Delete(ctx, assetURL); err != nil {
		s.LogWarn(ctx, "failed to delete hosted asset", "asset_url", assetURL, "error", err.Error())
	}
}
