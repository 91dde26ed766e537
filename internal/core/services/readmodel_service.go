package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// ReadModelService serves the composed, client-shaped views. Watching a
// video has side effects (view counter, watch history) applied before the
// view is composed, so the returned count includes the current watch.
type ReadModelService struct {
	BaseService
	readRepo  portsrepo.ReadModelRepository
	videoRepo portsrepo.VideoWriter
	userRepo  portsrepo.WatchHistoryWriter
}

func NewReadModelService(
	readRepo portsrepo.ReadModelRepository,
	videoRepo portsrepo.VideoWriter,
	userRepo portsrepo.WatchHistoryWriter,
) portssvc.ReadModelSvcFacade {
	return &ReadModelService{readRepo: readRepo, videoRepo: videoRepo, userRepo: userRepo}
}

var _ portssvc.ReadModelSvcFacade = (*ReadModelService)(nil)

func (s *ReadModelService) ChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error) {
	profile, err := s.readRepo.GetChannelProfile(ctx, normalizeUsername(username), requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose channel profile: %w", err)
	}
	return profile, nil
}

func (s *ReadModelService) VideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error) {
	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}

	// History recording is tied to an authenticated requester; anonymous
	// views still count but leave no history.
	if requesterID != "" {
		if err := s.userRepo.AddToWatchHistory(ctx, requesterID, videoID, time.Now()); err != nil {
			s.LogWarn(ctx, "failed to record watch history", "video_id", videoID, "error", err.Error())
		}
	}

	detail, err := s.readRepo.GetVideoDetail(ctx, videoID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose video detail: %w", err)
	}
	return detail, nil
}

func (s *ReadModelService) Feed(ctx context.Context) ([]domain.FeedItem, error) {
	items, err := s.readRepo.GetFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compose feed: %w", err)
	}
	return items, nil
}

func (s *ReadModelService) WatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	entries, err := s.readRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose watch history: %w", err)
	}
	return entries, nil
}
