package repositories

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means an insert violated a unique constraint. For role
	// tables this is the expected outcome for the loser of a concurrent
	// profile-completion race.
	ErrDuplicateKey = errors.New("duplicate key")
)
