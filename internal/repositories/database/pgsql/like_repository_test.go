package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

func TestLikeRepo_SaveLike_Insert(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := &PgxLikeRepository{BaseRepository: BaseRepository{Pool: mock}}
	ctx := context.Background()

	videoID := "b2c3d4e5-1111-4222-8333-444455556666"
	like := domain.Like{
		LikeID:    "f0000000-1111-4222-8333-444455556666",
		VideoID:   &videoID,
		LikedBy:   "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001",
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO likes`).
		WithArgs(like.LikeID, like.VideoID, like.CommentID, like.TweetID, like.LikedBy, like.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"like_id"}).AddRow(like.LikeID))

	likeID, err := r.SaveLike(ctx, like)
	require.NoError(t, err)
	require.Equal(t, like.LikeID, likeID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepo_SaveLike_DuplicateReturnsExistingEdge(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := &PgxLikeRepository{BaseRepository: BaseRepository{Pool: mock}}
	ctx := context.Background()

	videoID := "b2c3d4e5-1111-4222-8333-444455556666"
	like := domain.Like{
		LikeID:    "f0000000-1111-4222-8333-444455556666",
		VideoID:   &videoID,
		LikedBy:   "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001",
		CreatedAt: time.Now(),
	}

	// ON CONFLICT DO NOTHING yields no row; the existing edge is fetched.
	mock.ExpectQuery(`INSERT INTO likes`).
		WithArgs(like.LikeID, like.VideoID, like.CommentID, like.TweetID, like.LikedBy, like.CreatedAt).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`SELECT like_id FROM likes WHERE video_id = \$1 AND liked_by = \$2`).
		WithArgs(videoID, like.LikedBy).
		WillReturnRows(pgxmock.NewRows([]string{"like_id"}).AddRow("e1111111-1111-4222-8333-444455556666"))

	likeID, err := r.SaveLike(ctx, like)
	require.NoError(t, err)
	require.Equal(t, "e1111111-1111-4222-8333-444455556666", likeID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepo_DeleteLike_NoEdge(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := &PgxLikeRepository{BaseRepository: BaseRepository{Pool: mock}}
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM likes WHERE tweet_id = \$1 AND liked_by = \$2`).
		WithArgs("b2c3d4e5-1111-4222-8333-444455556666", "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := r.DeleteLike(ctx, domain.LikeTargetTweet, "b2c3d4e5-1111-4222-8333-444455556666", "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
