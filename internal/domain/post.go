package domain

import (
	"time"

	"github.com/google/uuid"
)

// LegacyImagePlaceholder is the literal value the original frontend wrote
// when no image was supplied. Update keeps a post's imageUrl untouched while
// it still holds this placeholder; the check is intentionally a plain string
// comparison. Do not "fix" this without coordinating a data migration.
const LegacyImagePlaceholder = "undefined"

// Post is a published article owned by exactly one user. CreatorID is
// immutable after creation; Creator is the expanded owner, populated on
// reads that resolve it.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatorID uuid.UUID `json:"creator_id"`
	Creator   *User     `json:"creator,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a Post owned by creatorID with a fresh ID and creation
// timestamps. Field validation happens in the service before this is called.
func NewPost(creatorID uuid.UUID, title, content, imageURL string) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyUpdate replaces title and content unconditionally and refreshes the
// update timestamp. The imageUrl is only replaced while the post is not
// carrying the legacy placeholder value.
func (p *Post) ApplyUpdate(title, content, imageURL string) {
	p.Title = title
	p.Content = content
	if p.ImageURL != LegacyImagePlaceholder {
		p.ImageURL = imageURL
	}
	p.UpdatedAt = time.Now().UTC()
}
