package domain

import "time"

// LikeTarget enumerates the entity kinds a like can attach to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "VIDEO"
	LikeTargetComment LikeTarget = "COMMENT"
	LikeTargetTweet   LikeTarget = "TWEET"
)

// Like is a directed edge from a user to exactly one target entity.
// Exactly one of VideoID/CommentID/TweetID is non-nil per record, and
// (likedBy, target) is unique, so a user holds at most one like per target.
type Like struct {
	LikeID    string    `json:"likeID"` // Primary Key (UUID)
	VideoID   *string   `json:"videoID,omitempty"`
	CommentID *string   `json:"commentID,omitempty"`
	TweetID   *string   `json:"tweetID,omitempty"`
	LikedBy   string    `json:"likedBy"` // User reference
	CreatedAt time.Time `json:"createdAt"`
}

// Target reports which target kind this like is attached to, and its ID.
func (l Like) Target() (LikeTarget, string) {
	switch {
	case l.VideoID != nil:
		return LikeTargetVideo, *l.VideoID
	case l.CommentID != nil:
		return LikeTargetComment, *l.CommentID
	default:
		return LikeTargetTweet, derefOrEmpty(l.TweetID)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
