package domain

// Playlist is a named set of videos owned by a user. Membership has set
// semantics: adding the same video twice keeps a single entry.
type Playlist struct {
	PlaylistID  string   `json:"playlistID"` // Primary Key (UUID)
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	VideoIDs    []string `json:"videoIDs"`
	OwnerID     string   `json:"ownerID"` // User reference
	AuditFields
}
