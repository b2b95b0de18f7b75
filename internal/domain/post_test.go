package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	post := NewPost(creatorID, "First post", "Some longer content", "images/first.png")

	require.NotNil(t, post)
	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, creatorID, post.CreatorID)
	assert.Equal(t, "First post", post.Title)
	assert.Equal(t, "Some longer content", post.Content)
	assert.Equal(t, "images/first.png", post.ImageURL)
	assert.Nil(t, post.Creator)
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
}

func TestPostApplyUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces all fields", func(t *testing.T) {
		t.Parallel()

		post := NewPost(uuid.New(), "Old title", "Old content here", "images/old.png")
		originalUpdatedAt := post.UpdatedAt

		post.ApplyUpdate("New title", "New content here", "images/new.png")

		assert.Equal(t, "New title", post.Title)
		assert.Equal(t, "New content here", post.Content)
		assert.Equal(t, "images/new.png", post.ImageURL)
		assert.False(t, post.UpdatedAt.Before(originalUpdatedAt))
	})

	t.Run("keeps imageUrl while carrying the legacy placeholder", func(t *testing.T) {
		t.Parallel()

		post := NewPost(uuid.New(), "Old title", "Old content here", LegacyImagePlaceholder)

		post.ApplyUpdate("New title", "New content here", "images/new.png")

		assert.Equal(t, "New title", post.Title)
		assert.Equal(t, "New content here", post.Content)
		assert.Equal(t, LegacyImagePlaceholder, post.ImageURL)
	})

	t.Run("creator never changes", func(t *testing.T) {
		t.Parallel()

		creatorID := uuid.New()
		post := NewPost(creatorID, "Old title", "Old content here", "images/old.png")

		post.ApplyUpdate("New title", "New content here", "images/new.png")

		assert.Equal(t, creatorID, post.CreatorID)
	})
}
