package ports

import "errors"

// Adapters wrap these so use cases and the HTTP layer can match them with
// errors.Is.
var (
	// ErrNotFound covers missing games, units, settlements and scenarios.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a lost version check or a reused idempotency key.
	ErrConflict = errors.New("conflict")
)
