package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// ObjectStore is a flat key/object bucket.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	// Download returns ErrObjectNotFound when key does not exist.
	Download(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
