package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 2

// ImageStore is the blob-store collaborator the post service uses to clean
// up replaced or deleted images. Cleanup is best-effort: failures are
// logged, never surfaced to the caller.
type ImageStore interface {
	// Remove deletes the blob at the given path.
	Remove(ctx context.Context, path string) error
}

// PostPage is one page of the post listing plus the total count across all
// posts, not just the caller's.
type PostPage struct {
	Posts      []*domain.Post
	TotalPosts int
}

// DeleteResult reports a completed deletion.
type DeleteResult struct {
	IsDeleted bool
}

// PostService provides post authoring, retrieval, and listing operations.
// Every method requires an authenticated caller; mutations additionally
// require ownership.
type PostService interface {
	// Create validates the fields and persists a post owned by the caller.
	Create(ctx context.Context, title, content, imageURL string) (*domain.Post, error)

	// List returns the page-th page of posts ordered by creation time
	// descending. A page below 1 is treated as page 1.
	List(ctx context.Context, page int) (*PostPage, error)

	// Get retrieves a single post by ID with its creator expanded.
	Get(ctx context.Context, postID uuid.UUID) (*domain.Post, error)

	// Update validates the fields and applies them to a post the caller
	// owns. The imageUrl keeps its current value while the post carries
	// the legacy placeholder.
	Update(ctx context.Context, postID uuid.UUID, title, content, imageURL string) (*domain.Post, error)

	// Delete removes a post the caller owns and requests best-effort
	// cleanup of its image blob.
	Delete(ctx context.Context, postID uuid.UUID) (*DeleteResult, error)
}

// postServiceImpl implements the PostService interface.
type postServiceImpl struct {
	postStore store.PostStore
	userStore store.UserStore
	images    ImageStore
	inTx      store.TxRunner
	logger    *slog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(
	postStore store.PostStore,
	userStore store.UserStore,
	images ImageStore,
	inTx store.TxRunner,
	log *slog.Logger,
) PostService {
	if log == nil {
		log = slog.Default()
	}
	return &postServiceImpl{
		postStore: postStore,
		userStore: userStore,
		images:    images,
		inTx:      inTx,
		logger:    log.With(slog.String("component", "post_service")),
	}
}

// Create implements PostService.Create.
func (s *postServiceImpl) Create(
	ctx context.Context,
	title, content, imageURL string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidatePostInput(title, content, imageURL); err != nil {
		log.Debug("post input rejected", "error", err, "user_id", id.UserID)
		return nil, err
	}

	post := domain.NewPost(id.UserID, title, content, imageURL)

	// The post row and the owner's collection change together; one
	// transaction covers the user-existence check and the insert.
	err = s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.userStore.WithTx(tx)
		txPosts := s.postStore.WithTx(tx)

		creator, err := txUsers.GetByID(ctx, id.UserID)
		if err != nil {
			return err
		}
		if err := txPosts.Create(ctx, post); err != nil {
			return err
		}
		post.Creator = creator
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("post creation by vanished user", "user_id", id.UserID)
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to create post", "error", err, "user_id", id.UserID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Info("post created",
		"post_id", post.ID,
		"user_id", id.UserID)

	return post, nil
}

// List implements PostService.List.
func (s *postServiceImpl) List(ctx context.Context, page int) (*PostPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	total, err := s.postStore.Count(ctx)
	if err != nil {
		log.Error("failed to count posts", "error", err)
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	posts, err := s.postStore.List(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		log.Error("failed to list posts", "error", err, "page", page)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return &PostPage{Posts: posts, TotalPosts: total}, nil
}

// Get implements PostService.Get.
func (s *postServiceImpl) Get(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Debug("post not found", "post_id", postID)
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to retrieve post", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}

	return post, nil
}

// Update implements PostService.Update.
func (s *postServiceImpl) Update(
	ctx context.Context,
	postID uuid.UUID,
	title, content, imageURL string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	if err := domain.ValidatePostInput(title, content, imageURL); err != nil {
		log.Debug("post update input rejected", "error", err, "post_id", postID)
		return nil, err
	}

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to retrieve post for update", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}

	if err := auth.RequireOwner(ctx, post.CreatorID); err != nil {
		log.Debug("post update by non-owner",
			"post_id", postID,
			"creator_id", post.CreatorID)
		return nil, err
	}

	previousImage := post.ImageURL
	post.ApplyUpdate(title, content, imageURL)

	if err := s.postStore.Update(ctx, post); err != nil {
		log.Error("failed to update post", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if previousImage != post.ImageURL {
		s.cleanupImage(previousImage)
	}

	log.Info("post updated", "post_id", post.ID)

	return post, nil
}

// Delete implements PostService.Delete.
func (s *postServiceImpl) Delete(ctx context.Context, postID uuid.UUID) (*DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to retrieve post for deletion", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}

	if err := auth.RequireOwner(ctx, post.CreatorID); err != nil {
		log.Debug("post deletion by non-owner",
			"post_id", postID,
			"creator_id", post.CreatorID)
		return nil, err
	}

	// Removing the row removes it from the owner's collection in the same
	// write; the transaction keeps the ownership check and the delete on
	// one consistent view.
	err = s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.postStore.WithTx(tx).Delete(ctx, postID)
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to delete post", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	s.cleanupImage(post.ImageURL)

	log.Info("post deleted", "post_id", postID)

	return &DeleteResult{IsDeleted: true}, nil
}

// cleanupImage requests blob removal without blocking or failing the owning
// operation. The legacy placeholder is never a real blob.
func (s *postServiceImpl) cleanupImage(path string) {
	if path == "" || path == domain.LegacyImagePlaceholder {
		return
	}

	go func() {
		ctx := logger.WithLogger(context.Background(), s.logger)
		if err := s.images.Remove(ctx, path); err != nil {
			s.logger.Warn("image cleanup failed",
				"error", err,
				"path", path)
		}
	}()
}
