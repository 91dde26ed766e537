package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

// The subscriber comparison must cast the requester parameter explicitly;
// without the casts the statement cannot prepare against uuid columns.
const isSubscribedFragment = `s\.subscriber_id = NULLIF\(\$2, ''\)::uuid`

func TestReadModelRepo_GetChannelProfile(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(isSubscribedFragment).
		WithArgs("creator", "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001").
		WillReturnRows(pgxmock.NewRows([]string{
			"user_id", "fullname", "username", "email", "avatar_url", "coalesce",
			"total_subscribers", "total_subscribed_to", "is_subscribed",
		}).AddRow(
			"a1f0c2e4-1111-4222-8333-444455556666", "The Creator", "creator",
			"creator@example.com", "https://cdn/avatar.png", "",
			int64(42), int64(3), true,
		))

	profile, err := r.GetChannelProfile(ctx, "creator", "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001")
	require.NoError(t, err)
	require.Equal(t, "creator", profile.Username)
	require.Equal(t, int64(42), profile.TotalSubscribers)
	require.Equal(t, int64(3), profile.TotalSubscribedTo)
	require.True(t, profile.IsSubscribed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetChannelProfile_Anonymous(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	// An anonymous requester is the empty string straight through to the
	// query; NULLIF turns it into NULL server-side.
	mock.ExpectQuery(isSubscribedFragment).
		WithArgs("creator", "").
		WillReturnRows(pgxmock.NewRows([]string{
			"user_id", "fullname", "username", "email", "avatar_url", "coalesce",
			"total_subscribers", "total_subscribed_to", "is_subscribed",
		}).AddRow(
			"a1f0c2e4-1111-4222-8333-444455556666", "The Creator", "creator",
			"creator@example.com", "https://cdn/avatar.png", "",
			int64(42), int64(3), false,
		))

	profile, err := r.GetChannelProfile(ctx, "creator", "")
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetChannelProfile_NotFound(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(isSubscribedFragment).
		WithArgs("ghost", "").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetChannelProfile(ctx, "ghost", "")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetVideoDetail(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	videoID := "b2c3d4e5-1111-4222-8333-444455556666"
	requesterID := "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001"
	createdAt := time.Now()

	mock.ExpectQuery(`FROM videos v`).
		WithArgs(videoID, requesterID).
		WillReturnRows(pgxmock.NewRows([]string{
			"video_id", "title", "description", "video_url", "duration_seconds",
			"views", "created_at", "like_count",
			"user_id", "fullname", "username", "avatar_url",
			"total_subscribers", "is_subscribed",
		}).AddRow(
			videoID, "My Video", "about things", "https://cdn/v.mp4", 12.5,
			int64(101), createdAt, int64(7),
			"a1f0c2e4-1111-4222-8333-444455556666", "The Creator", "creator", "https://cdn/avatar.png",
			int64(42), true,
		))

	mock.ExpectQuery(`FROM comments c`).
		WithArgs(videoID).
		WillReturnRows(pgxmock.NewRows([]string{
			"comment_id", "content", "created_at", "like_count",
			"user_id", "fullname", "username", "avatar_url",
		}).AddRow(
			"c0000000-1111-4222-8333-444455556666", "first!", createdAt, int64(2),
			"e0000000-1111-4222-8333-444455556666", "A Fan", "fan", "https://cdn/fan.png",
		))

	detail, err := r.GetVideoDetail(ctx, videoID, requesterID)
	require.NoError(t, err)
	require.Equal(t, int64(7), detail.LikeCount)
	require.Equal(t, int64(42), detail.Owner.TotalSubscribers)
	require.True(t, detail.Owner.IsSubscribed)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "fan", detail.Comments[0].Author.Username)
	require.Equal(t, int64(2), detail.Comments[0].LikeCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetVideoDetail_NotFound(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`FROM videos v`).
		WithArgs("b2c3d4e5-1111-4222-8333-444455556666", "").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetVideoDetail(ctx, "b2c3d4e5-1111-4222-8333-444455556666", "")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetWatchHistory(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	userID := "d8b2f5c0-6f3a-4f9f-9c38-62a5f0a5b001"
	watchedAt := time.Now()

	mock.ExpectQuery(`FROM watch_history wh`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"video_id", "title", "thumbnail_url", "duration_seconds",
			"user_id", "fullname", "username", "avatar_url", "watched_at",
		}).AddRow(
			"b2c3d4e5-1111-4222-8333-444455556666", "My Video", "https://cdn/t.png", 12.5,
			"a1f0c2e4-1111-4222-8333-444455556666", "The Creator", "creator", "https://cdn/avatar.png", watchedAt,
		))

	entries, err := r.GetWatchHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "creator", entries[0].Owner.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_GetFeed_PublishedOnly(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := newPgxReadModelRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`WHERE v\.is_published = TRUE`).
		WillReturnRows(pgxmock.NewRows([]string{
			"video_id", "title", "thumbnail_url", "duration_seconds", "views",
			"created_at", "like_count",
			"user_id", "fullname", "username", "avatar_url",
		}))

	items, err := r.GetFeed(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}
