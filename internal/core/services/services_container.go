package services

import (
	"github.com/VidTubeHQ/vidtube_backend/internal/core/ports"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
	"github.com/VidTubeHQ/vidtube_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider,
// the media store and the runtime configuration.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, media ports.MediaStore, cfg *config.Config) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo, media)

	return &portssvc.ServiceContainer{
		User:         userSvc,
		Token:        NewTokenService(userSvc, cfg),
		Video:        NewVideoService(repos.VideoRepo, media),
		Comment:      NewCommentService(repos.CommentRepo, repos.VideoRepo),
		Like:         NewLikeService(repos.LikeRepo, repos.VideoRepo, repos.CommentRepo, repos.TweetRepo),
		Subscription: NewSubscriptionService(repos.SubscriptionRepo, repos.UserRepo),
		Tweet:        NewTweetService(repos.TweetRepo),
		Playlist:     NewPlaylistService(repos.PlaylistRepo, repos.VideoRepo),
		ReadModel:    NewReadModelService(repos.ReadModelRepo, repos.VideoRepo, repos.UserRepo),
	}
}
