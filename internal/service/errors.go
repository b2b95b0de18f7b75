// Package service provides application-level services for users and posts.
package service

// Service methods return sentinel errors for expected rejection conditions:
//
//  1. domain.InvalidInputError for validation failures (carries the full
//     field-message list)
//  2. store.ErrUserNotFound / store.ErrPostNotFound for absent entities
//  3. store.ErrEmailExists for duplicate registration
//  4. auth.ErrNotAuthenticated / auth.ErrNotOwner for authorization
//  5. auth.ErrInvalidCredentials for login password mismatch
//
// Callers check them with errors.Is/errors.As; the api package is the
// single point that maps them to the outward {message, status, data} shape.
// Anything else is an unexpected collaborator failure and surfaces as 500.
