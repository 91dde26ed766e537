package domain

// Video represents an uploaded video and its hosted assets.
type Video struct {
	VideoID         string  `json:"videoID"` // Primary Key (UUID)
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	VideoURL        string  `json:"videoURL"`
	ThumbnailURL    string  `json:"thumbnailURL"`
	DurationSeconds float64 `json:"durationSeconds"`
	Views           int64   `json:"views"`
	IsPublished     bool    `json:"isPublished"`
	OwnerID         string  `json:"ownerID"` // User reference
	AuditFields
}
