package domain

// Tweet is a short text post by a user.
type Tweet struct {
	TweetID string `json:"tweetID"` // Primary Key (UUID)
	Content string `json:"content"`
	OwnerID string `json:"ownerID"` // User reference
	AuditFields
}
