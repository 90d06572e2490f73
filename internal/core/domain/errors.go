package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested file or directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoInput indicates a fix invocation with nothing to operate on.
	ErrNoInput = errors.New("no input files or directories")

	// ErrNotDirectory indicates a path that exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
