package repository

import "errors"

// Common repository errors
var (
	// ErrArchiveNotFound is returned when a board archive is not found
	ErrArchiveNotFound = errors.New("archive not found")
)
