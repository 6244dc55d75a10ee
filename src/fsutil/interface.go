package fsutil

import (
	"context"
	"errors"
)

// ErrNotExist is returned when the requested file or object does not exist.
var ErrNotExist = errors.New("file does not exist")

// FileStore provides read access to the manual and its metadata, wherever
// they are stored.
type FileStore interface {
	// ReadFile reads a file and returns its contents
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Stat returns the size in bytes of the file at path
	Stat(ctx context.Context, path string) (int64, error)
}
