package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrNotAuthenticated indicates the request carries no valid identity.
	ErrNotAuthenticated = errors.New("user is not authenticated")

	// ErrInvalidCredentials indicates a login password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
