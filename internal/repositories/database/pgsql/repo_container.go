package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the
// shared connection pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(db),
		VideoRepo:        newPgxVideoRepository(db),
		CommentRepo:      newPgxCommentRepository(db),
		LikeRepo:         newPgxLikeRepository(db),
		SubscriptionRepo: newPgxSubscriptionRepository(db),
		TweetRepo:        newPgxTweetRepository(db),
		PlaylistRepo:     newPgxPlaylistRepository(db),
		ReadModelRepo:    newPgxReadModelRepository(db),
	}
}
