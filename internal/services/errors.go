package services

import "errors"

// Sentinel errors the handler layer maps to HTTP statuses. Services wrap
// them with context via fmt.Errorf("...: %w", Err...).
var (
	// ErrNotFound: a referenced posting, application, profile or user is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a uniqueness invariant would be violated.
	ErrConflict = errors.New("conflict")
	// ErrValidation: the request is rejected before any write.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized: the credentials do not match any account.
	ErrUnauthorized = errors.New("invalid credentials")
)
