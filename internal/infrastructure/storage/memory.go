package storage

import (
	"context"
	"sync"

	"mediscan/internal/domain/port"
)

// MemoryBlobStore is an in-memory blob store for tests.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	types map[string]string
}

// NewMemoryBlobStore creates an empty in-memory store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string][]byte),
		types: make(map[string]string),
	}
}

// Upload keeps a copy of the blob and returns a memory:// URL.
func (s *MemoryBlobStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_ = ctx

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.blobs[name] = buf
	s.types[name] = contentType
	s.mu.Unlock()

	return "memory://" + name, nil
}

// Delete removes a blob.
func (s *MemoryBlobStore) Delete(ctx context.Context, name string) error {
	_ = ctx

	s.mu.Lock()
	delete(s.blobs, name)
	delete(s.types, name)
	s.mu.Unlock()

	return nil
}

// Get returns a stored blob and its content type.
func (s *MemoryBlobStore) Get(name string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[name]
	return data, s.types[name], ok
}

var _ port.BlobStore = (*MemoryBlobStore)(nil)
