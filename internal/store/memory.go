package store

import (
	"context"
	"sync"

	"github.com/cosmichub/api/internal/links"
)

// MemoryStore is an in-memory implementation of links.Store, used in tests
// and for local development without GitHub credentials.
type MemoryStore struct {
	mu     sync.RWMutex
	data   links.LinksData
	exists bool
}

// NewMemoryStore creates a new in-memory link collection store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored collection, or links.ErrNotFound before the first
// save, mirroring a repository without the document.
func (m *MemoryStore) Load(_ context.Context) (links.LinksData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.exists {
		return links.LinksData{}, links.ErrNotFound
	}

	out := links.LinksData{Links: make([]links.Link, len(m.data.Links))}
	copy(out.Links, m.data.Links)

	return out, nil
}

// Save replaces the stored collection.
func (m *MemoryStore) Save(_ context.Context, data links.LinksData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := links.LinksData{Links: make([]links.Link, len(data.Links))}
	copy(stored.Links, data.Links)

	m.data = stored
	m.exists = true

	return nil
}

// Seed sets the collection directly, marking the document as existing.
func (m *MemoryStore) Seed(data links.LinksData) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	m.exists = true
}
