package nosvault

import "errors"

var (
	// ErrNotFound is returned when a stored file is not found
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when a storage or I/O error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when path validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when credential verification fails
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when an authenticated key does not own the target namespace
	ErrForbidden = errors.New("forbidden")
)
