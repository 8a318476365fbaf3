package repositories

import "errors"

var (
	// ErrNotFound is returned when no record matches the given id or name.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateRecord is returned when a create or update collides with a
	// unique index (e.g. a category or supplier name already in use).
	ErrDuplicateRecord = errors.New("duplicate record")
)
