package storage

import (
	"context"
	"io"
)

// ObjectStorage is the interface for file storage backends. Upload places the
// payload under a public-read ACL and returns the public URL. Callers treat an
// upload error as "skip creating a document", not as a fatal request error.
type ObjectStorage interface {
	Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error)
}
