package services_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) AddToWatchHistory(ctx context.Context, userID, videoID string, watchedAt time.Time) error {
	args := m.Called(ctx, userID, videoID, watchedAt)
	return args.Error(0)
}

// --- Mock MediaStore ---

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, assetURL string) error {
	args := m.Called(ctx, assetURL)
	return args.Error(0)
}

// --- Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockMedia    *MockMediaStore
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockMedia = new(MockMediaStore)
	s.service = services.NewUserService(s.mockUserRepo, s.mockMedia)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func avatarUpload() dto.FileUpload {
	return dto.FileUpload{
		Reader:      strings.NewReader("img-bytes"),
		Filename:    "avatar.png",
		ContentType: "image/png",
		Size:        9,
	}
}

func (s *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Fullname: "Jane Doe",
		Username: "  JaneDoe  ",
		Email:    "jane@example.com",
		Password: "supersecret",
	}

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "janedoe", "jane@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockMedia.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("https://cdn.example.com/avatars/x.png", nil).Once()
	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "janedoe" &&
			user.AvatarURL == "https://cdn.example.com/avatars/x.png" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := s.service.RegisterUser(ctx, req, avatarUpload(), nil)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("janedoe", user.Username)
	s.NotEmpty(user.UserID)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockMedia.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Fullname: "Jane Doe",
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: "supersecret",
	}

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "janedoe", "jane@example.com").
		Return(&domain.User{UserID: "existing"}, nil).Once()

	user, err := s.service.RegisterUser(ctx, req, avatarUpload(), nil)

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockMedia.AssertNotCalled(s.T(), "Upload")
}

func (s *UserServiceTestSuite) TestRegisterUser_SaveFailsCleansUpAssets() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Fullname: "Jane Doe",
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: "supersecret",
	}

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "janedoe", "jane@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockMedia.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("https://cdn.example.com/avatars/x.png", nil).Once()
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()
	s.mockMedia.On("Delete", ctx, "https://cdn.example.com/avatars/x.png").Return(nil).Once()

	user, err := s.service.RegisterUser(ctx, req, avatarUpload(), nil)

	s.Require().Error(err)
	s.Nil(user)
	s.mockMedia.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	stored := &domain.User{UserID: "user-1", Username: "janedoe", PasswordHash: string(hash)}

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "janedoe", "JaneDoe").
		Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(ctx, "JaneDoe", "supersecret")

	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	stored := &domain.User{UserID: "user-1", Username: "janedoe", PasswordHash: string(hash)}

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "janedoe", "janedoe").
		Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(ctx, "janedoe", "wrong")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "ghost", "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AuthenticateUser(ctx, "ghost", "whatever")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestChangePassword_WrongOldPassword() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	stored := &domain.User{UserID: "user-1", PasswordHash: string(hash)}

	s.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(stored, nil).Once()

	err := s.service.ChangePassword(ctx, "user-1", "incorrect", "newpassword")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockUserRepo.AssertNotCalled(s.T(), "UpdatePassword")
}

func (s *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	stored := &domain.User{UserID: "user-1", PasswordHash: string(hash)}

	s.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(stored, nil).Once()
	s.mockUserRepo.On("UpdatePassword", ctx, "user-1", mock.MatchedBy(func(newHash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpassword")) == nil
	})).Return(nil).Once()

	err := s.service.ChangePassword(ctx, "user-1", "correct", "newpassword")

	s.Require().NoError(err)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateAvatar_DeletesOldAssetAfterUpdate() {
	ctx := context.Background()
	stored := &domain.User{UserID: "user-1", AvatarURL: "https://cdn.example.com/avatars/old.png"}

	s.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(stored, nil).Once()
	s.mockMedia.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("https://cdn.example.com/avatars/new.png", nil).Once()
	s.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.AvatarURL == "https://cdn.example.com/avatars/new.png"
	})).Return(nil).Once()
	s.mockMedia.On("Delete", ctx, "https://cdn.example.com/avatars/old.png").Return(nil).Once()

	user, err := s.service.UpdateAvatar(ctx, "user-1", avatarUpload())

	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/avatars/new.png", user.AvatarURL)
	s.mockMedia.AssertExpectations(s.T())
}
