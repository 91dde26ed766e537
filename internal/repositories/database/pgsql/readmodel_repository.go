package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
)

// PgxReadModelRepository composes the denormalized views with SQL joins
// and correlated subqueries instead of application-side assembly, so each
// view is a single round trip (two for the video page).
type PgxReadModelRepository struct {
	BaseRepository
}

func newPgxReadModelRepository(db PgxPool) portsrepo.ReadModelRepository {
	return &PgxReadModelRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReadModelRepository = (*PgxReadModelRepository)(nil)

func (r *PgxReadModelRepository) GetChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error) {
	// An empty requesterID (anonymous viewer) becomes NULL through NULLIF,
	// never matches any subscriber_id and leaves the EXISTS false. The
	// explicit casts keep the parameter text-typed at parse time.
	query := `
        SELECT
            u.user_id,
            u.fullname,
            u.username,
            u.email,
            u.avatar_url,
            COALESCE(u.cover_image_url, ''),
            (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id)     AS total_subscribers,
            (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id)  AS total_subscribed_to,
            EXISTS (
                SELECT 1 FROM subscriptions s
                WHERE s.channel_id = u.user_id AND s.subscriber_id = NULLIF($2, '')::uuid
            ) AS is_subscribed
        FROM users u
        WHERE u.username = $1;
    `
	var p domain.ChannelProfile
	err := r.Pool.QueryRow(ctx, query, username, requesterID).Scan(
		&p.UserID,
		&p.Fullname,
		&p.Username,
		&p.Email,
		&p.AvatarURL,
		&p.CoverImageURL,
		&p.TotalSubscribers,
		&p.TotalSubscribedTo,
		&p.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to compose channel profile for %s: %w", username, err)
	}
	return &p, nil
}

func (r *PgxReadModelRepository) GetVideoDetail(ctx context.Context, videoID, requesterID string) (*domain.VideoDetail, error) {
	videoQuery := `
        SELECT
            v.video_id,
            v.title,
            v.description,
            v.video_url,
            v.duration_seconds,
            v.views,
            v.created_at,
            (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.video_id) AS like_count,
            u.user_id,
            u.fullname,
            u.username,
            u.avatar_url,
            (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS total_subscribers,
            EXISTS (
                SELECT 1 FROM subscriptions s
                WHERE s.channel_id = u.user_id AND s.subscriber_id = NULLIF($2, '')::uuid
            ) AS is_subscribed
        FROM videos v
        JOIN users u ON u.user_id = v.owner_id
        WHERE v.video_id = $1;
    `
	var d domain.VideoDetail
	err := r.Pool.QueryRow(ctx, videoQuery, videoID, requesterID).Scan(
		&d.VideoID,
		&d.Title,
		&d.Description,
		&d.VideoURL,
		&d.DurationSeconds,
		&d.Views,
		&d.CreatedAt,
		&d.LikeCount,
		&d.Owner.UserID,
		&d.Owner.Fullname,
		&d.Owner.Username,
		&d.Owner.AvatarURL,
		&d.Owner.TotalSubscribers,
		&d.Owner.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to compose video detail for %s: %w", videoID, err)
	}

	commentsQuery := `
        SELECT
            c.comment_id,
            c.content,
            c.created_at,
            (SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.comment_id) AS like_count,
            u.user_id,
            u.fullname,
            u.username,
            u.avatar_url
        FROM comments c
        JOIN users u ON u.user_id = c.owner_id
        WHERE c.video_id = $1
        ORDER BY c.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, commentsQuery, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for video %s: %w", videoID, err)
	}
	defer rows.Close()

	d.Comments = []domain.CommentDetail{}
	for rows.Next() {
		var c domain.CommentDetail
		err := rows.Scan(
			&c.CommentID,
			&c.Content,
			&c.CreatedAt,
			&c.LikeCount,
			&c.Author.UserID,
			&c.Author.Fullname,
			&c.Author.Username,
			&c.Author.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		d.Comments = append(d.Comments, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}

	return &d, nil
}

func (r *PgxReadModelRepository) GetFeed(ctx context.Context) ([]domain.FeedItem, error) {
	query := `
        SELECT
            v.video_id,
            v.title,
            v.thumbnail_url,
            v.duration_seconds,
            v.views,
            v.created_at,
            (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.video_id) AS like_count,
            u.user_id,
            u.fullname,
            u.username,
            u.avatar_url
        FROM videos v
        JOIN users u ON u.user_id = v.owner_id
        WHERE v.is_published = TRUE
        ORDER BY v.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer rows.Close()

	items := []domain.FeedItem{}
	for rows.Next() {
		var item domain.FeedItem
		err := rows.Scan(
			&item.VideoID,
			&item.Title,
			&item.ThumbnailURL,
			&item.DurationSeconds,
			&item.Views,
			&item.CreatedAt,
			&item.LikeCount,
			&item.Owner.UserID,
			&item.Owner.Fullname,
			&item.Owner.Username,
			&item.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", rows.Err())
	}

	return items, nil
}

func (r *PgxReadModelRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	// INNER JOINs silently drop history rows whose video (or its owner)
	// has since been deleted.
	query := `
        SELECT
            v.video_id,
            v.title,
            v.thumbnail_url,
            v.duration_seconds,
            u.user_id,
            u.fullname,
            u.username,
            u.avatar_url,
            wh.watched_at
        FROM watch_history wh
        JOIN videos v ON v.video_id = wh.video_id
        JOIN users u ON u.user_id = v.owner_id
        WHERE wh.user_id = $1
        ORDER BY wh.watched_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	entries := []domain.WatchHistoryEntry{}
	for rows.Next() {
		var e domain.WatchHistoryEntry
		err := rows.Scan(
			&e.VideoID,
			&e.Title,
			&e.ThumbnailURL,
			&e.DurationSeconds,
			&e.Owner.UserID,
			&e.Owner.Fullname,
			&e.Owner.Username,
			&e.Owner.AvatarURL,
			&e.WatchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}

	return entries, nil
}
