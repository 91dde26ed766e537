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

type CommentServiceTestSuite struct {
	suite.Suite
	mockCommentRepo *MockCommentRepository
	mockVideoRepo   *MockVideoRepository
	service         portssvc.CommentSvcFacade
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.mockCommentRepo = new(MockCommentRepository)
	s.mockVideoRepo = new(MockVideoRepository)
	s.service = services.NewCommentService(s.mockCommentRepo, s.mockVideoRepo)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}

func (s *CommentServiceTestSuite) TestAddComment_Success() {
	ctx := context.Background()

	s.mockVideoRepo.On("FindVideoByID", ctx, "vid-1").Return(&domain.Video{VideoID: "vid-1"}, nil).Once()
	s.mockCommentRepo.On("SaveComment", ctx, mock.MatchedBy(func(comment domain.Comment) bool {
		return comment.VideoID == "vid-1" && comment.OwnerID == "user-1" && comment.Content == "nice video"
	})).Return(nil).Once()

	comment, err := s.service.AddComment(ctx, "vid-1", "user-1", "  nice video  ")

	s.Require().NoError(err)
	s.Require().NotNil(comment)
	s.Equal("nice video", comment.Content)
	s.NotEmpty(comment.CommentID)
	s.mockCommentRepo.AssertExpectations(s.T())
}

func (s *CommentServiceTestSuite) TestAddComment_BlankContent() {
	ctx := context.Background()

	comment, err := s.service.AddComment(ctx, "vid-1", "user-1", "   ")

	s.Require().Error(err)
	s.Nil(comment)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockVideoRepo.AssertNotCalled(s.T(), "FindVideoByID")
}

func (s *CommentServiceTestSuite) TestAddComment_VideoMissing() {
	ctx := context.Background()

	s.mockVideoRepo.On("FindVideoByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	comment, err := s.service.AddComment(ctx, "missing", "user-1", "hello")

	s.Require().Error(err)
	s.Nil(comment)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CommentServiceTestSuite) TestEditComment_NotOwner() {
	ctx := context.Background()
	stored := &domain.Comment{CommentID: "comment-1", OwnerID: "owner-1", Content: "old"}

	s.mockCommentRepo.On("FindCommentByID", ctx, "comment-1").Return(stored, nil).Once()

	comment, err := s.service.EditComment(ctx, "comment-1", "intruder", "new")

	s.Require().Error(err)
	s.Nil(comment)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockCommentRepo.AssertNotCalled(s.T(), "UpdateComment")
}

func (s *CommentServiceTestSuite) TestDeleteComment_Success() {
	ctx := context.Background()
	stored := &domain.Comment{CommentID: "comment-1", OwnerID: "user-1"}

	s.mockCommentRepo.On("FindCommentByID", ctx, "comment-1").Return(stored, nil).Once()
	s.mockCommentRepo.On("DeleteComment", ctx, "comment-1").Return(nil).Once()

	err := s.service.DeleteComment(ctx, "comment-1", "user-1")

	s.Require().NoError(err)
	s.mockCommentRepo.AssertExpectations(s.T())
}
