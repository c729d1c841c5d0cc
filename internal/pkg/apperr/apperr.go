package apperr

import "errors"

// Sentinels for the failure classes the HTTP layer knows how to map.
// Services and repos wrap these with %w and add detail; the boundary
// matches with errors.Is and never exposes engine or upstream bodies.
var (
	// ErrNotFound marks a well-formed lookup that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate on a unique field.
	ErrConflict = errors.New("conflict")
	// ErrValidation marks malformed input, including identifiers in the
	// wrong format for the active storage engine.
	ErrValidation = errors.New("invalid argument")
	// ErrUnauthorized marks missing or failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream marks a third-party API failure or a malformed
	// third-party response.
	ErrUpstream = errors.New("upstream unavailable")
	// ErrStorageUnavailable marks an unreachable storage engine.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
