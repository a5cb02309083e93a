package domain

import "errors"

var (
	// ErrNotFound means no entry exists for the requested identity.
	ErrNotFound = errors.New("not found")

	// ErrBackend wraps failures of an OS service (credential store,
	// notification center).
	ErrBackend = errors.New("backend error")

	// ErrWindowOp wraps window show/hide/focus failures.
	ErrWindowOp = errors.New("window operation failed")

	ErrInvalidInput = errors.New("invalid input")
)
