package domain

// Comment is a user's comment on a video. Ownership is required so the
// edit/delete authorization check is always sound.
type Comment struct {
	CommentID string `json:"commentID"` // Primary Key (UUID)
	Content   string `json:"content"`
	VideoID   string `json:"videoID"` // Video reference
	OwnerID   string `json:"ownerID"` // User reference
	AuditFields
}
