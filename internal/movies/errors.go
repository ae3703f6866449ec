package movies

import "errors"

var (
	// ErrNotFound is returned when no movie exists for the given id.
	ErrNotFound = errors.New("movie not found")

	// ErrDuplicateTitle is returned when an insert violates the unique
	// title constraint.
	ErrDuplicateTitle = errors.New("movie title already exists")
)
