package storage

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
)

// PhotoStore persists uploaded feedback and gallery photos.
type PhotoStore interface {
	Save(path string, data io.Reader) error
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
	Close() error
}

// MemoryPhotoStore keeps photos in memory. Used in tests and when no
// FTP server is configured.
type MemoryPhotoStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryPhotoStore creates an empty in-memory store.
func NewMemoryPhotoStore() *MemoryPhotoStore {
	return &MemoryPhotoStore{files: make(map[string][]byte)}
}

func (s *MemoryPhotoStore) Save(path string, data io.Reader) error {
	content, err := io.ReadAll(data)
	if err != nil {
		return fmt.Errorf("failed to read photo data: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
	return nil
}

func (s *MemoryPhotoStore) Open(path string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	if !ok {
		return nil, errs.ErrPhotoNotFound
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *MemoryPhotoStore) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *MemoryPhotoStore) Close() error { return nil }
