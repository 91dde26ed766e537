package repositories

// RepositoryProvider holds instances of all repositories, wired once at
// startup and handed to the service container.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	VideoRepo        VideoRepositoryFacade
	CommentRepo      CommentRepositoryFacade
	LikeRepo         LikeRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	TweetRepo        TweetRepositoryFacade
	PlaylistRepo     PlaylistRepositoryFacade
	ReadModelRepo    ReadModelRepository
}
