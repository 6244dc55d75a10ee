package manualqa

import (
	"context"

	"manualrag/src/core/manual"
	"manualrag/src/fsutil"
)

// MetadataSource supplies the page metadata searched by Answer.
type MetadataSource interface {
	Load(ctx context.Context) manual.Metadata
	// Check reports whether the underlying metadata is reachable.
	Check(ctx context.Context) error
}

// FileMetadata re-reads the metadata file in full on every Load.
type FileMetadata struct {
	fs   fsutil.FileStore
	path string
}

func NewFileMetadata(fs fsutil.FileStore, path string) *FileMetadata {
	return &FileMetadata{fs: fs, path: path}
}

func (m *FileMetadata) Load(ctx context.Context) manual.Metadata {
	return manual.ReadMetadata(ctx, m.fs, m.path)
}

func (m *FileMetadata) Check(ctx context.Context) error {
	_, err := m.fs.Stat(ctx, m.path)
	return err
}

// StaticMetadata serves metadata loaded once.
type StaticMetadata struct {
	md manual.Metadata
}

func NewStaticMetadata(md manual.Metadata) *StaticMetadata {
	return &StaticMetadata{md: md}
}

func (m *StaticMetadata) Load(context.Context) manual.Metadata {
	return m.md
}

func (m *StaticMetadata) Check(context.Context) error {
	return nil
}
