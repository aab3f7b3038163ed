package recentsearch

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps lists for the life of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

func (s *MemoryStore) Load(_ context.Context, owner string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists[owner]), nil
}

func (s *MemoryStore) Save(_ context.Context, owner string, list []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(list) == 0 {
		delete(s.lists, owner)
		return nil
	}
	s.lists[owner] = slices.Clone(list)
	return nil
}
