// Package common defines shared constants and sentinel errors used across
// the EventPoster client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Remote resource errors.
	ErrNotFound = errors.New("not found")

	// Auth errors: the server rejected the call as unauthenticated or
	// forbidden. A session that triggers this is no longer trusted.
	ErrUnauthorized = errors.New("unauthorized")

	// Transport-level errors (connection refused, timeout, 5xx).
	ErrUnavailable = errors.New("server unavailable")

	// Client-side form validation failures. These never reach the network.
	ErrValidation = errors.New("validation error")
)
