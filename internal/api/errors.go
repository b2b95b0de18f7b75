package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
)

// MapError converts a service failure into the outward status code, a safe
// user-facing message, and any structured validation detail. This is the
// single point where internal errors become client-visible; raw error text
// never leaks.
//
// Ownership failures map to 401, not 403, matching the contract the
// original clients were built against.
func MapError(err error) (status int, message string, data []string) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusUnprocessableEntity, "Invalid input", invalid.Messages
	}

	switch {
	case errors.Is(err, errBadArguments):
		return http.StatusBadRequest, "Malformed arguments", nil

	case errors.Is(err, auth.ErrNotAuthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, "User is not authenticated", nil

	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect password", nil

	case errors.Is(err, auth.ErrNotOwner):
		return http.StatusUnauthorized, "Not authorized", nil

	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, "User not found", nil

	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound, "Post not found", nil

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict, "User already exists", nil

	default:
		return http.StatusInternalServerError, "An unexpected error occurred", nil
	}
}
