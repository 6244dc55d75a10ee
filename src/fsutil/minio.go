package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrInvalidObjectPath is returned for paths not in "bucket/object" form.
var ErrInvalidObjectPath = errors.New("object path must be bucket/object")

// MinioFileStore reads files from an S3 compatible object store. Paths have
// the form "bucket-name/object-name".
type MinioFileStore struct {
	client *minio.Client
}

// MinioConfig holds connection settings for MinioFileStore.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func NewMinioFileStore(cfg MinioConfig) (*MinioFileStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioFileStore{
		client: client,
	}, nil
}

func (s *MinioFileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	bucket, object, err := SplitObjectPath(path)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioError(path, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapMinioError(path, err)
	}

	return data, nil
}

func (s *MinioFileStore) Stat(ctx context.Context, path string) (int64, error) {
	bucket, object, err := SplitObjectPath(path)
	if err != nil {
		return 0, err
	}

	info, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		return 0, mapMinioError(path, err)
	}
	return info.Size, nil
}

// SplitObjectPath splits "bucket-name/object-name" into its two parts.
func SplitObjectPath(path string) (string, string, error) {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidObjectPath, path)
	}
	return parts[0], parts[1], nil
}

func mapMinioError(path string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	return fmt.Errorf("failed to read object %s: %w", path, err)
}
