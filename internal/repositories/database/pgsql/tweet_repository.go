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

type PgxTweetRepository struct {
	BaseRepository
}

func newPgxTweetRepository(db PgxPool) portsrepo.TweetRepositoryFacade {
	return &PgxTweetRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TweetRepositoryFacade = (*PgxTweetRepository)(nil)

func (r *PgxTweetRepository) SaveTweet(ctx context.Context, tweet domain.Tweet) error {
	query := `
        INSERT INTO tweets (tweet_id, content, owner_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		tweet.TweetID,
		tweet.Content,
		tweet.OwnerID,
		tweet.CreatedAt,
		tweet.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save tweet: %w", err)
	}
	return nil
}

func (r *PgxTweetRepository) FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	query := `
		SELECT tweet_id, content, owner_id, created_at, last_updated_at
		FROM tweets WHERE tweet_id = $1;
	`
	var t domain.Tweet
	err := r.Pool.QueryRow(ctx, query, tweetID).Scan(
		&t.TweetID,
		&t.Content,
		&t.OwnerID,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tweet by ID %s: %w", tweetID, err)
	}
	return &t, nil
}

func (r *PgxTweetRepository) FindTweetsByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	query := `
		SELECT tweet_id, content, owner_id, created_at, last_updated_at
		FROM tweets WHERE owner_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tweets by owner: %w", err)
	}
	defer rows.Close()

	tweets := []domain.Tweet{}
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.TweetID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}
		tweets = append(tweets, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tweet rows: %w", rows.Err())
	}

	return tweets, nil
}

func (r *PgxTweetRepository) UpdateTweet(ctx context.Context, tweet domain.Tweet) error {
	query := `UPDATE tweets SET content = $1, last_updated_at = $2 WHERE tweet_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, tweet.Content, tweet.LastUpdatedAt, tweet.TweetID)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tweet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTweetRepository) DeleteTweet(ctx context.Context, tweetID string) error {
	query := `DELETE FROM tweets WHERE tweet_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, tweetID)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tweet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
