package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/services"
)

// --- Mock SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

// --- Suite ---

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockSubRepo  *MockSubscriptionRepository
	mockUserRepo *MockUserRepository
	service      portssvc.SubscriptionSvcFacade
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.mockSubRepo = new(MockSubscriptionRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewSubscriptionService(s.mockSubRepo, s.mockUserRepo)
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_Success() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByID", ctx, "channel-1").Return(&domain.User{UserID: "channel-1"}, nil).Once()
	s.mockSubRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.SubscriberID == "user-1" && sub.ChannelID == "channel-1" && sub.SubscriptionID != ""
	})).Return(nil).Once()

	sub, err := s.service.Subscribe(ctx, "user-1", "channel-1")

	s.Require().NoError(err)
	s.Require().NotNil(sub)
	s.mockSubRepo.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_SelfSubscription() {
	ctx := context.Background()

	sub, err := s.service.Subscribe(ctx, "user-1", "user-1")

	s.Require().Error(err)
	s.Nil(sub)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockSubRepo.AssertNotCalled(s.T(), "SaveSubscription")
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_UnknownChannel() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	sub, err := s.service.Subscribe(ctx, "user-1", "ghost")

	s.Require().Error(err)
	s.Nil(sub)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SubscriptionServiceTestSuite) TestUnsubscribe_Success() {
	ctx := context.Background()

	s.mockSubRepo.On("DeleteSubscription", ctx, "user-1", "channel-1").Return(nil).Once()

	err := s.service.Unsubscribe(ctx, "user-1", "channel-1")

	s.Require().NoError(err)
	s.mockSubRepo.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestUnsubscribe_NoEdge() {
	ctx := context.Background()

	s.mockSubRepo.On("DeleteSubscription", ctx, "user-1", "channel-1").
		Return(apperrors.ErrNotFound).Once()

	err := s.service.Unsubscribe(ctx, "user-1", "channel-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
