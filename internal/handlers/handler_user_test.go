package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
	"github.com/VidTubeHQ/vidtube_backend/internal/handlers"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
	"github.com/VidTubeHQ/vidtube_backend/internal/utils"
)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatar dto.FileUpload, coverImage *dto.FileUpload) (*domain.User, error) {
	args := m.Called(ctx, req, avatar, coverImage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUserDetails(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateCoverImage(ctx context.Context, userID string, file dto.FileUpload) (*domain.User, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, identifier, password string) (*domain.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ReadModelService ---

type MockReadModelService struct {
	mock.Mock
}

func (m *MockReadModelService) ChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *MockReadModelService) VideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error) {
	args := m.Called(ctx, videoID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoDetail), args.Error(1)
}

func (m *MockReadModelService) Feed(ctx context.Context) ([]domain.FeedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

func (m *MockReadModelService) WatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchHistoryEntry), args.Error(1)
}

var _ portssvc.ReadModelSvcFacade = (*MockReadModelService)(nil)

// --- Suite ---

// UserHandlerTestSuite goes through the real route registration, so route
// paths and methods are part of what is under test.
type UserHandlerTestSuite struct {
	suite.Suite
	mockUserSvc *MockUserService
	mockRMSvc   *MockReadModelService
	router      *gin.Engine
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockUserSvc = new(MockUserService)
	s.mockRMSvc = new(MockReadModelService)

	cfg := &config.Config{
		JWTSecret:             testJWTSecret,
		AccessTokenCookieName: "accessToken",
	}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		User:      s.mockUserSvc,
		ReadModel: s.mockRMSvc,
	})
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestChangePassword_Patch() {
	s.mockUserSvc.On("ChangePassword", mock.Anything, testOwnerID, "old-pass", "new-pass").
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/change-password",
		strings.NewReader(`{"oldPassword":"old-pass","newPassword":"new-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authHeader(testOwnerID))
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockUserSvc.AssertExpectations(s.T())
}

func (s *UserHandlerTestSuite) TestChangePassword_PostNotRouted() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/change-password",
		strings.NewReader(`{"oldPassword":"old-pass","newPassword":"new-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authHeader(testOwnerID))
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockUserSvc.AssertNotCalled(s.T(), "ChangePassword")
}

func (s *UserHandlerTestSuite) TestChangePassword_WrongOldPassword() {
	s.mockUserSvc.On("ChangePassword", mock.Anything, testOwnerID, "wrong", "new-pass").
		Return(apperrors.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/change-password",
		strings.NewReader(`{"oldPassword":"wrong","newPassword":"new-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.authHeader(testOwnerID))
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *UserHandlerTestSuite) TestCurrentUser() {
	s.mockUserSvc.On("GetUserByID", mock.Anything, testOwnerID).
		Return(&domain.User{UserID: testOwnerID, Username: "creator"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.Header.Set("Authorization", s.authHeader(testOwnerID))
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "creator")
}

func (s *UserHandlerTestSuite) authHeader(userID string) string {
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, "test")
	s.Require().NoError(err)
	return "Bearer " + token
}
