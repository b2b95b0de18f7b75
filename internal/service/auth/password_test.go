package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production wiring uses a higher cost.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()

		hashed, err := hasher.Hash("secret-password")
		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "secret-password", hashed)

		assert.NoError(t, hasher.Compare(hashed, "secret-password"))
	})

	t.Run("compare rejects wrong password", func(t *testing.T) {
		t.Parallel()

		hashed, err := hasher.Hash("secret-password")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hashed, "wrong-password"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("secret-password")
		require.NoError(t, err)
		second, err := hasher.Hash("secret-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt salts should differ")
	})
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "valid cost kept", cost: 12, want: 12},
		{name: "below range falls back", cost: -1, want: bcrypt.DefaultCost},
		{name: "above range falls back", cost: 99, want: bcrypt.DefaultCost},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NewBcryptHasher(tc.cost).cost)
		})
	}
}
