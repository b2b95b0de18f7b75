package mocks

import (
	"context"
	"sync"
)

// MockImageStore implements service.ImageStore for testing. Removals are
// recorded under a mutex because cleanup runs on a background goroutine.
type MockImageStore struct {
	RemoveFn func(ctx context.Context, path string) error

	mu      sync.Mutex
	removed []string

	// RemoveError forces the default implementation to fail
	RemoveError error
}

// NewMockImageStore creates a new mock image store
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

// Remove implements the ImageStore interface
func (m *MockImageStore) Remove(ctx context.Context, path string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, path)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RemoveError != nil {
		return m.RemoveError
	}

	m.removed = append(m.removed, path)
	return nil
}

// Removed returns a copy of the paths removed so far
func (m *MockImageStore) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.removed))
	copy(out, m.removed)
	return out
}
