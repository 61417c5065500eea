package views

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps views in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string]View
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{views: make(map[string]View)}
}

// Save stores the view, overwriting any existing view with the same name.
func (s *MemoryStore) Save(_ context.Context, v View) error {
	if v.Name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.Name] = v
	return nil
}

// Get returns the view with the given name.
func (s *MemoryStore) Get(_ context.Context, name string) (View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.views[name]
	if !ok {
		return View{}, ErrNotFound
	}
	return v, nil
}

// List returns all views ordered by name.
func (s *MemoryStore) List(_ context.Context) ([]View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]View, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the view with the given name.
func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.views[name]; !ok {
		return ErrNotFound
	}
	delete(s.views, name)
	return nil
}
