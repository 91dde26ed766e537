package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// PlaylistService implements playlist operations with ownership checks on
// every mutation.
type PlaylistService struct {
	BaseService
	playlistRepo portsrepo.PlaylistRepositoryFacade
	videoRepo    portsrepo.VideoReader
}

func NewPlaylistService(playlistRepo portsrepo.PlaylistRepositoryFacade, videoRepo portsrepo.VideoReader) portssvc.PlaylistSvcFacade {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

var _ portssvc.PlaylistSvcFacade = (*PlaylistService)(nil)

func (s *PlaylistService) CreatePlaylist(ctx context.Context, requesterID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("playlist name must not be blank: %w", apperrors.ErrValidation)
	}

	videoIDs := []string{}
	if req.VideoID != "" {
		if _, err := s.videoRepo.FindVideoByID(ctx, req.VideoID); err != nil {
			return nil, fmt.Errorf("failed to find seed video: %w", err)
		}
		videoIDs = append(videoIDs, req.VideoID)
	}

	now := time.Now()
	playlist := domain.Playlist{
		PlaylistID:  uuid.NewString(),
		Name:        name,
		Description: req.Description,
		VideoIDs:    videoIDs,
		OwnerID:     requesterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.playlistRepo.SavePlaylist(ctx, playlist); err != nil {
		s.LogError(ctx, err, "failed to save playlist", "owner_id", requesterID)
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	return &playlist, nil
}

func (s *PlaylistService) GetPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return playlist, nil
}

func (s *PlaylistService) findOwnedPlaylist(ctx context.Context, playlistID, requesterID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to find playlist: %w", err)
	}
	if playlist.OwnerID != requesterID {
		return nil, fmt.Errorf("user %s does not own playlist %s: %w", requesterID, playlistID, apperrors.ErrForbidden)
	}
	return playlist, nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.Playlist, error) {
	if _, err := s.findOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return nil, err
	}
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return nil, fmt.Errorf("failed to find video: %w", err)
	}

	if err := s.playlistRepo.AddVideoToPlaylist(ctx, playlistID, videoID); err != nil {
		s.LogError(ctx, err, "failed to add video to playlist", "playlist_id", playlistID, "video_id", videoID)
		return nil, fmt.Errorf("failed to add video to playlist: %w", err)
	}

	return s.GetPlaylistByID(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.Playlist, error) {
	if _, err := s.findOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return nil, err
	}

	if err := s.playlistRepo.RemoveVideoFromPlaylist(ctx, playlistID, videoID); err != nil {
		if errorsIsNotFound(err) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to remove video from playlist", "playlist_id", playlistID, "video_id", videoID)
		return nil, fmt.Errorf("failed to remove video from playlist: %w", err)
	}

	return s.GetPlaylistByID(ctx, playlistID)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, requesterID string) error {
	if _, err := s.findOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return err
	}

	if err := s.playlistRepo.DeletePlaylist(ctx, playlistID); err != nil {
		s.LogError(ctx, err, "failed to delete playlist", "playlist_id", playlistID)
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}
