package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, post *domain.Post) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListFn          func(ctx context.Context, offset, limit int) ([]*domain.Post, error)
	ListByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Post, error)
	CountFn         func(ctx context.Context) (int, error)
	UpdateFn        func(ctx context.Context, post *domain.Post) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Posts map[uuid.UUID]*domain.Post

	// Errors forced onto default implementations
	CreateError error
	ListError   error
	UpdateError error
	DeleteError error
}

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts: make(map[uuid.UUID]*domain.Post),
	}
}

// sorted returns all stored posts ordered by creation time descending,
// matching the listing order of the real store.
func (m *MockPostStore) sorted() []*domain.Post {
	posts := make([]*domain.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Posts[post.ID] = post
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}

	return post, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	posts := m.sorted()
	if offset >= len(posts) {
		return nil, nil
	}
	posts = posts[offset:]
	if limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}

// ListByCreator implements the PostStore interface
func (m *MockPostStore) ListByCreator(
	ctx context.Context,
	creatorID uuid.UUID,
) ([]*domain.Post, error) {
	if m.ListByCreatorFn != nil {
		return m.ListByCreatorFn(ctx, creatorID)
	}

	var posts []*domain.Post
	for _, post := range m.sorted() {
		if post.CreatorID == creatorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Count implements the PostStore interface
func (m *MockPostStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}

	return len(m.Posts), nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Posts[post.ID]; !exists {
		return store.ErrPostNotFound
	}

	m.Posts[post.ID] = post
	return nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if m.DeleteError != nil {
		return m.DeleteError
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrPostNotFound
	}

	delete(m.Posts, id)
	return nil
}

// WithTx implements the PostStore interface for transaction support.
// The mock ignores the transaction and returns itself.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
