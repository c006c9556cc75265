package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediscan/internal/domain/port"
)

// LocalBlobStore writes blobs under a directory on disk. It is the
// development fallback for the managed blob service; the API serves the
// directory statically under baseURL.
type LocalBlobStore struct {
	dir     string
	baseURL string
}

// NewLocalBlobStore creates the directory if needed.
func NewLocalBlobStore(dir, baseURL string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalBlobStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload writes the blob and returns its public URL.
func (s *LocalBlobStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_ = ctx
	_ = contentType

	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *LocalBlobStore) Delete(ctx context.Context, name string) error {
	_ = ctx

	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// resolve maps a blob name onto the storage directory and rejects names that
// would escape it.
func (s *LocalBlobStore) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(s.dir, clean), nil
}

var _ port.BlobStore = (*LocalBlobStore)(nil)
