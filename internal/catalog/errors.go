package catalog

import "errors"

var (
	// ErrBookNotFound means no book has the requested ISBN.
	ErrBookNotFound = errors.New("book not found")

	// ErrUserNotFound means no user has the requested ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookUnavailable means no available copy has the requested ISBN.
	ErrBookUnavailable = errors.New("book not available")
)
