package services

import "errors"

// Sentinel errors handlers translate into HTTP status codes.
var (
	// ErrNotFound means the requested record does not exist. Empty lists are
	// not errors; this only fires on keyed lookups and mutations.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput covers validation failures on a submitted form.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate means a create collided with an existing primary key.
	ErrDuplicate = errors.New("record already exists")
)
