package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// identityKey is the context key under which the request identity travels.
type identityKey struct{}

// Identity is the caller identity derived once per incoming request from a
// bearer token. Absence of an Identity in the context means the request is
// unauthenticated; the middleware records that silently and each operation
// enforces its own requirement.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// ErrNotOwner indicates the authenticated caller does not own the resource
// it is trying to modify.
var ErrNotOwner = errors.New("caller does not own this resource")

// WithIdentity returns a copy of ctx carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the identity stored in ctx.
// The second return is false when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireAuthenticated returns the caller's identity, or ErrNotAuthenticated
// when the request carries none.
func RequireAuthenticated(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return Identity{}, ErrNotAuthenticated
	}
	return id, nil
}

// RequireOwner checks that the authenticated caller is the owner of a
// resource created by creatorID. Ownership comparison is by identifier
// equality only. Returns ErrNotAuthenticated for anonymous callers and
// ErrNotOwner for authenticated non-owners.
func RequireOwner(ctx context.Context, creatorID uuid.UUID) error {
	id, err := RequireAuthenticated(ctx)
	if err != nil {
		return err
	}
	if id.UserID != creatorID {
		return ErrNotOwner
	}
	return nil
}
