// Package blob provides the image blob store backing post images.
package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phrazzld/quill-api/internal/platform/logger"
)

// LocalStore stores image blobs on the local filesystem under a single
// directory. Stored paths are relative (e.g. "images/<name>") so they can
// double as URLs once the directory is served statically.
type LocalStore struct {
	dir      string
	timeFunc func() time.Time // Injectable for testing
	logger   *slog.Logger
}

// NewLocalStore creates a LocalStore rooted at dir, creating the directory
// if needed.
func NewLocalStore(dir string, log *slog.Logger) (*LocalStore, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &LocalStore{
		dir:      dir,
		timeFunc: time.Now,
		logger:   log.With(slog.String("component", "blob_store")),
	}, nil
}

// Save writes the blob under a timestamp-prefixed version of filename and
// returns the relative path it is reachable at.
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Only the base name is kept; clients cannot pick directories.
	name := s.timeFunc().UTC().Format(time.RFC3339) + "-" + filepath.Base(filename)
	fullPath := filepath.Join(s.dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		log.Error("failed to create blob file",
			slog.String("error", err.Error()),
			slog.String("path", fullPath))
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(fullPath)
		log.Error("failed to write blob file",
			slog.String("error", err.Error()),
			slog.String("path", fullPath))
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}

// Remove deletes the blob at the given stored path. A path that does not
// resolve inside the store's directory is rejected; a blob that is already
// gone is not an error.
func (s *LocalStore) Remove(ctx context.Context, path string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	name := filepath.Base(filepath.FromSlash(path))
	if name == "." || name == string(filepath.Separator) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid blob path: %q", path)
	}

	fullPath := filepath.Join(s.dir, name)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			log.Debug("blob already removed", slog.String("path", fullPath))
			return nil
		}
		return fmt.Errorf("failed to remove blob: %w", err)
	}

	return nil
}

// Dir returns the directory the store serves blobs from.
func (s *LocalStore) Dir() string {
	return s.dir
}
