package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/services"
)

// --- Mock ReadModelRepository ---

type MockReadModelRepository struct {
	mock.Mock
}

func (m *MockReadModelRepository) GetChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, requesterID)
	var profile *domain.ChannelProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.ChannelProfile)
	}
	return profile, args.Error(1)
}

func (m *MockReadModelRepository) GetVideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error) {
	args := m.Called(ctx, videoID, requesterID)
	var detail *domain.VideoDetail
	if args.Get(0) != nil {
		detail = args.Get(0).(*domain.VideoDetail)
	}
	return detail, args.Error(1)
}

func (m *MockReadModelRepository) GetFeed(ctx context.Context) ([]domain.FeedItem, error) {
	args := m.Called(ctx)
	var items []domain.FeedItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.FeedItem)
	}
	return items, args.Error(1)
}

func (m *MockReadModelRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.WatchHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WatchHistoryEntry)
	}
	return entries, args.Error(1)
}

// --- Suite ---

type ReadModelServiceTestSuite struct {
	suite.Suite
	mockReadRepo  *MockReadModelRepository
	mockVideoRepo *MockVideoRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.ReadModelSvcFacade
}

func (s *ReadModelServiceTestSuite) SetupTest() {
	s.mockReadRepo = new(MockReadModelRepository)
	s.mockVideoRepo = new(MockVideoRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewReadModelService(s.mockReadRepo, s.mockVideoRepo, s.mockUserRepo)
}

func TestReadModelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelServiceTestSuite))
}

func (s *ReadModelServiceTestSuite) TestChannelProfile_NormalizesUsername() {
	ctx := context.Background()
	expected := &domain.ChannelProfile{UserID: "user-1", Username: "janedoe", TotalSubscribers: 3}

	s.mockReadRepo.On("GetChannelProfile", ctx, "janedoe", "viewer-1").Return(expected, nil).Once()

	profile, err := s.service.ChannelProfile(ctx, "  JaneDoe ", "viewer-1")

	s.Require().NoError(err)
	s.Equal(expected, profile)
	s.mockReadRepo.AssertExpectations(s.T())
}

func (s *ReadModelServiceTestSuite) TestVideoDetail_CountsViewAndRecordsHistory() {
	ctx := context.Background()
	expected := &domain.VideoDetail{VideoID: "vid-1", Views: 10}

	s.mockVideoRepo.On("IncrementViews", ctx, "vid-1").Return(nil).Once()
	s.mockUserRepo.On("AddToWatchHistory", ctx, "viewer-1", "vid-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockReadRepo.On("GetVideoDetail", ctx, "vid-1", "viewer-1").Return(expected, nil).Once()

	detail, err := s.service.VideoDetail(ctx, "vid-1", "viewer-1")

	s.Require().NoError(err)
	s.Equal(expected, detail)
	s.mockVideoRepo.AssertExpectations(s.T())
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *ReadModelServiceTestSuite) TestVideoDetail_AnonymousLeavesNoHistory() {
	ctx := context.Background()
	expected := &domain.VideoDetail{VideoID: "vid-1"}

	s.mockVideoRepo.On("IncrementViews", ctx, "vid-1").Return(nil).Once()
	s.mockReadRepo.On("GetVideoDetail", ctx, "vid-1", "").Return(expected, nil).Once()

	detail, err := s.service.VideoDetail(ctx, "vid-1", "")

	s.Require().NoError(err)
	s.Equal(expected, detail)
	s.mockUserRepo.AssertNotCalled(s.T(), "AddToWatchHistory")
}

func (s *ReadModelServiceTestSuite) TestVideoDetail_MissingVideo() {
	ctx := context.Background()

	s.mockVideoRepo.On("IncrementViews", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	detail, err := s.service.VideoDetail(ctx, "missing", "viewer-1")

	s.Require().Error(err)
	s.Nil(detail)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockReadRepo.AssertNotCalled(s.T(), "GetVideoDetail")
}

func (s *ReadModelServiceTestSuite) TestVideoDetail_HistoryFailureIsNotFatal() {
	ctx := context.Background()
	expected := &domain.VideoDetail{VideoID: "vid-1"}

	s.mockVideoRepo.On("IncrementViews", ctx, "vid-1").Return(nil).Once()
	s.mockUserRepo.On("AddToWatchHistory", ctx, "viewer-1", "vid-1", mock.AnythingOfType("time.Time")).
		Return(assertableErr).Once()
	s.mockReadRepo.On("GetVideoDetail", ctx, "vid-1", "viewer-1").Return(expected, nil).Once()

	detail, err := s.service.VideoDetail(ctx, "vid-1", "viewer-1")

	s.Require().NoError(err)
	s.Equal(expected, detail)
}

func (s *ReadModelServiceTestSuite) TestFeed() {
	ctx := context.Background()
	items := []domain.FeedItem{
		{VideoID: "vid-2", CreatedAt: time.Now()},
		{VideoID: "vid-1", CreatedAt: time.Now().Add(-time.Hour)},
	}

	s.mockReadRepo.On("GetFeed", ctx).Return(items, nil).Once()

	got, err := s.service.Feed(ctx)

	s.Require().NoError(err)
	s.Equal(items, got)
}

func (s *ReadModelServiceTestSuite) TestWatchHistory() {
	ctx := context.Background()
	entries := []domain.WatchHistoryEntry{{VideoID: "vid-1", WatchedAt: time.Now()}}

	s.mockReadRepo.On("GetWatchHistory", ctx, "user-1").Return(entries, nil).Once()

	got, err := s.service.WatchHistory(ctx, "user-1")

	s.Require().NoError(err)
	s.Equal(entries, got)
}
