package blob

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore держит объекты в памяти процесса
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[uuid.UUID]Object
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[uuid.UUID]Object{}}
}

func (s *MemoryStore) Get(_ context.Context, key uuid.UUID) (Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return Object{}, ErrNotFound
	}
	obj.Data = append([]byte(nil), obj.Data...)
	return obj, nil
}

func (s *MemoryStore) Put(_ context.Context, key uuid.UUID, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)
	return nil
}
