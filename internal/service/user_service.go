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

// LoginResult is what a successful login yields: an opaque bearer token and
// the authenticated user's ID.
type LoginResult struct {
	Token  string
	UserID uuid.UUID
}

// UserService provides registration, login, and profile operations.
type UserService interface {
	// Register validates the input, rejects duplicate emails, hashes the
	// password, and persists the new user with the default status.
	Register(ctx context.Context, email, password, name string) (*domain.User, error)

	// Login authenticates by email and password and issues a bearer token.
	// Returns store.ErrUserNotFound when no user matches the email and
	// auth.ErrInvalidCredentials when the password does not verify.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetCurrentUser returns the authenticated caller's user with the
	// posts back-reference populated.
	GetCurrentUser(ctx context.Context) (*domain.User, error)

	// UpdateStatus validates and persists a new status for the
	// authenticated caller.
	UpdateStatus(ctx context.Context, status string) (*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore  store.UserStore
	postStore  store.PostStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	inTx       store.TxRunner
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	postStore store.PostStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	inTx store.TxRunner,
	log *slog.Logger,
) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userServiceImpl{
		userStore:  userStore,
		postStore:  postStore,
		hasher:     hasher,
		jwtService: jwtService,
		inTx:       inTx,
		logger:     log.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(
	ctx context.Context,
	email, password, name string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateRegistration(email, password, name); err != nil {
		log.Debug("registration input rejected", "error", err)
		return nil, err
	}

	normalized := domain.NormalizeEmail(email)

	// Uniqueness is checked up front for a clean error, and again by the
	// store's unique constraint for correctness under races.
	if _, err := s.userStore.GetByEmail(ctx, normalized); err == nil {
		log.Debug("attempted to register existing email", "email", normalized)
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check email uniqueness", "error", err, "email", normalized)
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(normalized, hashed, name)

	err = s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register existing email", "email", normalized)
			return nil, store.ErrEmailExists
		}
		log.Error("failed to save user", "error", err, "email", normalized)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// Login implements UserService.Login.
func (s *userServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	normalized := domain.NormalizeEmail(email)

	user, err := s.userStore.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email", "email", normalized)
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to look up user for login", "error", err, "email", normalized)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login password mismatch", "user_id", user.ID)
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID)

	return &LoginResult{Token: token, UserID: user.ID}, nil
}

// GetCurrentUser implements UserService.GetCurrentUser.
func (s *userServiceImpl) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("authenticated user no longer exists", "user_id", id.UserID)
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to retrieve user", "error", err, "user_id", id.UserID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	posts, err := s.postStore.ListByCreator(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user's posts", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to load user's posts: %w", err)
	}
	user.Posts = posts

	return user, nil
}

// UpdateStatus implements UserService.UpdateStatus.
func (s *userServiceImpl) UpdateStatus(
	ctx context.Context,
	status string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateStatus(status); err != nil {
		log.Debug("status update input rejected", "error", err, "user_id", id.UserID)
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to retrieve user for status update",
			"error", err,
			"user_id", id.UserID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	user.UpdateStatus(status)

	if err := s.userStore.Update(ctx, user); err != nil {
		log.Error("failed to update user status", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	log.Info("user status updated", "user_id", user.ID)

	return user, nil
}
