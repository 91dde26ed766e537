package ports

import (
	"context"
	"io"
)

// MediaStore abstracts the external media host that keeps video files,
// thumbnails, avatars and cover images.
type MediaStore interface {
	// Upload stores the content under the given object key and returns the
	// public URL of the hosted asset.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// Delete removes a previously uploaded asset given its public URL.
	Delete(ctx context.Context, assetURL string) error
}
