package mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, email string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Errors forced onto default implementations
	GenerateError error
	ValidateError error
}

// NewMockJWTService creates a new mock JWT service
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{}
}

// GenerateToken implements the JWTService interface. The default token
// embeds the user ID and email so ValidateToken can round-trip them.
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	email string,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email)
	}

	if m.GenerateError != nil {
		return "", m.GenerateError
	}

	return fmt.Sprintf("token:%s:%s", userID, email), nil
}

// ValidateToken implements the JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	if m.ValidateError != nil {
		return nil, m.ValidateError
	}

	parts := strings.SplitN(tokenString, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, auth.ErrInvalidToken
	}

	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Claims{UserID: userID, Email: parts[2]}, nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing without
// paying the bcrypt cost on every test
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashError error
}

// NewMockPasswordHasher creates a new mock password hasher
func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

// Hash implements the PasswordHasher interface with a reversible marker
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.HashError != nil {
		return "", m.HashError
	}

	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}
