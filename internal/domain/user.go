package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultUserStatus is assigned to every user at registration.
const DefaultUserStatus = "A new"

// User represents a registered account.
// The password hash never serializes outward; the api layer additionally
// builds explicit response structs so storage shapes stay internal.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Posts is the user's owned posts, populated on reads that resolve
	// the back-reference. It is derived state, not stored on the user row.
	Posts []*Post `json:"posts,omitempty"`
}

// NormalizeEmail lowercases and trims an email address. Uniqueness checks
// and storage always operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a User with a fresh ID, the normalized email, the default
// status, and creation timestamps. The caller supplies the already-hashed
// password; plaintext never reaches the entity.
func NewUser(email, hashedPassword, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
		Name:           name,
		Status:         DefaultUserStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateStatus replaces the user's status and refreshes the update
// timestamp. Validation happens in the service before this is called.
func (u *User) UpdateStatus(status string) {
	u.Status = status
	u.UpdatedAt = time.Now().UTC()
}
