package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed search request.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrStoreUnavailable signals that a backing store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
