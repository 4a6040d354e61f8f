package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process FileStore used by tests and as the local
// development fallback when no MinIO endpoint is configured. Contents are
// lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory file store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Store(_ context.Context, prefix string, upload *Upload) (string, error) {
	key := ObjectKey(prefix, upload.Filename)
	content := make([]byte, len(upload.Content))
	copy(content, upload.Content)

	s.mu.Lock()
	s.objects[key] = content
	s.mu.Unlock()
	return key, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("object %q does not exist", key)
	}
	delete(s.objects, key)
	return nil
}

// Get returns the stored bytes for key. Test helper.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[key]
	return b, ok
}

// Len returns the number of stored objects. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
