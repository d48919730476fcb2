// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across client/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist on the backend.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the backend rejected the credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCallback indicates a callback exchange that returned 200 but is
	// missing the credential or the user payload.
	ErrInvalidCallback = errors.New("invalid callback response")

	// ErrStaleResponse indicates a list response superseded by a newer request.
	ErrStaleResponse = errors.New("stale response")
)
