package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/phrazzld/quill-api/internal/api"
	"github.com/phrazzld/quill-api/internal/config"
	"github.com/phrazzld/quill-api/internal/platform/blob"
	"github.com/phrazzld/quill-api/internal/platform/postgres"
	"github.com/phrazzld/quill-api/internal/service"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
	"github.com/phrazzld/quill-api/migrations"
)

// application holds the wired dependency graph. All configuration is
// explicit construction-time state; nothing reads ambient globals.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	blobStore  *blob.LocalStore
	jwtService auth.JWTService
	dispatcher *api.Dispatcher
	uploads    *api.UploadHandler
}

// newApplication opens the database, applies migrations, and constructs
// every service in dependency order.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	blobStore, err := blob.NewLocalStore(cfg.Blob.ImagesDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, logger)
	postStore := postgres.NewPostgresPostStore(db, logger)

	inTx := store.NewTxRunner(db)
	userService := service.NewUserService(userStore, postStore, hasher, jwtService, inTx, logger)
	postService := service.NewPostService(postStore, userStore, blobStore, inTx, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		blobStore:  blobStore,
		jwtService: jwtService,
		dispatcher: api.NewDispatcher(userService, postService, logger),
		uploads:    api.NewUploadHandler(blobStore, logger),
	}, nil
}

// applyMigrations runs the embedded goose migrations against the database.
func applyMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close releases the application's resources.
func (app *application) Close() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
