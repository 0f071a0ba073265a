package repository

import (
	"context"
	"sync"

	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
)

// MemoryCache is the in-process cache tier. It starts empty every run and
// grows without bound; entries only leave through Delete. Values are copied
// on Put and Get so callers never share the cached record.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]*resume.StoredResume
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: make(map[string]*resume.StoredResume)}
}

func (m *MemoryCache) Get(_ context.Context, id string) (*resume.StoredResume, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.store[id]
	if !ok {
		return nil, false, nil
	}
	return r.Clone(), true, nil
}

func (m *MemoryCache) Put(_ context.Context, r *resume.StoredResume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[r.ID] = r.Clone()
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return false, nil
	}
	delete(m.store, id)
	return true, nil
}

// Len is the number of cached resumes.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
