package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/phrazzld/quill-api/internal/api/shared"
)

// maxUploadBytes bounds image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// BlobSaver is the write side of the blob store the upload handler uses.
type BlobSaver interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// UploadHandler accepts image uploads and stores them in the blob store,
// responding with the stored path clients pass back as a post's imageUrl.
type UploadHandler struct {
	blobs  BlobSaver
	logger *slog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(blobs BlobSaver, log *slog.Logger) *UploadHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UploadHandler{
		blobs:  blobs,
		logger: log.With(slog.String("component", "upload_handler")),
	}
}

// allowedImageExt reports whether the filename carries an accepted image
// extension. Only png and jpeg variants are stored.
func allowedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

// Upload handles PUT /api/images with a multipart form field named "image".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithFailure(w, r, http.StatusUnprocessableEntity,
			"No image provided", nil, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close upload", "error", err)
		}
	}()

	if !allowedImageExt(header.Filename) {
		shared.RespondWithFailure(w, r, http.StatusUnprocessableEntity,
			"Unsupported image type", nil, nil)
		return
	}

	path, err := h.blobs.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error("failed to store image",
			"error", err,
			"filename", header.Filename)
		shared.RespondWithFailure(w, r, http.StatusInternalServerError,
			"Failed to store image", nil, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UploadResponse{
		Message:  "File stored",
		FilePath: path,
	})
}
