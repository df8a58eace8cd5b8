package domain

import "errors"

var (
	// ErrNotFound indicates a path or reference did not resolve to an
	// existing item or document.
	ErrNotFound = errors.New("not found")
)
