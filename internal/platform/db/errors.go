package db

import "errors"

var (
	// ErrNotFound is returned when a lookup references an id that does
	// not exist (or no longer exists).
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write would reuse a nationally
	// unique identifier already held by a different patient.
	ErrDuplicate = errors.New("duplicate identifier")
)
