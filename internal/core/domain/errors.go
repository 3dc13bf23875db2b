package domain

import "errors"

var (
	// ErrNotFound signals that the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable signals that the backing store could not be
	// reached; callers decide the fallback policy.
	ErrUnavailable = errors.New("store unavailable")
)
