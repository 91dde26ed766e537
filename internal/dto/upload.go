package dto

import "io"

// FileUpload carries one uploaded file from the HTTP boundary into the
// services without exposing multipart details.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}
