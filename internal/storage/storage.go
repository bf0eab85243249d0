// Package storage uploads product images to the configured media provider.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured means no image storage provider credentials are set.
var ErrNotConfigured = errors.New("image_storage_not_configured")

// Uploader stores an image and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}
