package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBlobSaver records the last save and returns a canned path.
type stubBlobSaver struct {
	savedName string
	savedBody []byte
	path      string
	err       error
}

func (s *stubBlobSaver) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.savedName = filename
	s.savedBody = body
	return s.path, nil
}

// multipartImage builds a multipart body with one "image" part.
func multipartImage(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	t.Parallel()

	t.Run("stores a png and returns its path", func(t *testing.T) {
		t.Parallel()

		blobs := &stubBlobSaver{path: "images/2026-01-01T12:00:00Z-photo.png"}
		handler := NewUploadHandler(blobs, nil)

		body, contentType := multipartImage(t, "image", "photo.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPut, "/api/images", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		handler.Upload(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp UploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "File stored", resp.Message)
		assert.Equal(t, blobs.path, resp.FilePath)
		assert.Equal(t, "photo.png", blobs.savedName)
		assert.Equal(t, []byte("png-bytes"), blobs.savedBody)
	})

	t.Run("missing image part", func(t *testing.T) {
		t.Parallel()

		handler := NewUploadHandler(&stubBlobSaver{}, nil)

		body, contentType := multipartImage(t, "file", "photo.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPut, "/api/images", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		handler.Upload(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		t.Parallel()

		blobs := &stubBlobSaver{path: "images/x"}
		handler := NewUploadHandler(blobs, nil)

		body, contentType := multipartImage(t, "image", "script.sh", []byte("#!/bin/sh"))
		req := httptest.NewRequest(http.MethodPut, "/api/images", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		handler.Upload(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Empty(t, blobs.savedName, "nothing should reach the blob store")
	})

	t.Run("blob store failure is a server error", func(t *testing.T) {
		t.Parallel()

		handler := NewUploadHandler(&stubBlobSaver{err: errors.New("disk full")}, nil)

		body, contentType := multipartImage(t, "image", "photo.jpg", []byte("jpg-bytes"))
		req := httptest.NewRequest(http.MethodPut, "/api/images", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		handler.Upload(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAllowedImageExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "photo.png", want: true},
		{filename: "photo.jpg", want: true},
		{filename: "photo.jpeg", want: true},
		{filename: "PHOTO.PNG", want: true},
		{filename: "photo.gif", want: false},
		{filename: "photo.svg", want: false},
		{filename: "photo", want: false},
		{filename: "", want: false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, allowedImageExt(tc.filename), tc.filename)
	}
}
