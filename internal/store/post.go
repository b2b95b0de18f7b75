package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
// A user's post collection is the set of posts whose CreatorID matches the
// user, so creating or deleting a post keeps both views consistent.
type PostStore interface {
	// Create saves a new post to the store.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID with the creator expanded.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List retrieves posts across all creators ordered by creation time
	// descending, sliced by offset and limit, with creators expanded.
	List(ctx context.Context, offset, limit int) ([]*domain.Post, error)

	// ListByCreator retrieves every post owned by the given user, ordered
	// by creation time descending. Creators are not expanded.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Post, error)

	// Count returns the total number of posts across all creators.
	Count(ctx context.Context) (int, error)

	// Update modifies an existing post. The creator never changes.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PostStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) PostStore
}
