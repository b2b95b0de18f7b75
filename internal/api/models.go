package api

import (
	"time"

	"github.com/phrazzld/quill-api/internal/domain"
)

// Outward response shapes. These are built field-by-field from domain
// entities so internal storage representations never serialize directly.
// Identifiers render as strings and timestamps as RFC 3339 text.

// UserResponse is the outward shape of a user. It never carries the
// password hash.
type UserResponse struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Name   string         `json:"name"`
	Status string         `json:"status"`
	Posts  []PostResponse `json:"posts"`
}

// CreatorResponse is the outward shape of a post's expanded creator.
type CreatorResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PostResponse is the outward shape of a post.
type PostResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	ImageURL  string           `json:"imageUrl"`
	Creator   *CreatorResponse `json:"creator,omitempty"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// AuthResponse is the successful login payload.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// PostPageResponse is one page of posts plus the total count across all
// posts.
type PostPageResponse struct {
	Posts      []PostResponse `json:"posts"`
	TotalPosts int            `json:"totalPosts"`
}

// DeleteResponse reports a completed deletion.
type DeleteResponse struct {
	IsDeleted bool `json:"isDeleted"`
}

// UploadResponse reports a stored image blob.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// NewUserResponse builds the outward user shape, including the posts
// back-reference when populated.
func NewUserResponse(user *domain.User) UserResponse {
	posts := make([]PostResponse, 0, len(user.Posts))
	for _, post := range user.Posts {
		posts = append(posts, NewPostResponse(post))
	}
	return UserResponse{
		ID:     user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Status: user.Status,
		Posts:  posts,
	}
}

// NewPostResponse builds the outward post shape, expanding the creator when
// resolved.
func NewPostResponse(post *domain.Post) PostResponse {
	resp := PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if post.Creator != nil {
		resp.Creator = &CreatorResponse{
			ID:     post.Creator.ID.String(),
			Email:  post.Creator.Email,
			Name:   post.Creator.Name,
			Status: post.Creator.Status,
		}
	}
	return resp
}
