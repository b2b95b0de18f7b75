package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromContext(t *testing.T) {
	t.Parallel()

	t.Run("missing identity", func(t *testing.T) {
		t.Parallel()

		_, ok := IdentityFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		want := Identity{UserID: uuid.New(), Email: "reader@example.com"}
		ctx := WithIdentity(context.Background(), want)

		got, ok := IdentityFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	t.Parallel()

	t.Run("anonymous caller", func(t *testing.T) {
		t.Parallel()

		_, err := RequireAuthenticated(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("authenticated caller", func(t *testing.T) {
		t.Parallel()

		want := Identity{UserID: uuid.New(), Email: "reader@example.com"}
		got, err := RequireAuthenticated(WithIdentity(context.Background(), want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("anonymous caller", func(t *testing.T) {
		t.Parallel()

		err := RequireOwner(context.Background(), ownerID)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("owner", func(t *testing.T) {
		t.Parallel()

		ctx := WithIdentity(context.Background(), Identity{UserID: ownerID})
		assert.NoError(t, RequireOwner(ctx, ownerID))
	})

	t.Run("authenticated non-owner", func(t *testing.T) {
		t.Parallel()

		ctx := WithIdentity(context.Background(), Identity{UserID: uuid.New()})
		assert.ErrorIs(t, RequireOwner(ctx, ownerID), ErrNotOwner)
	})
}
