// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

var (
	// ErrUpstreamUnavailable means the external classifier could not produce a usable answer.
	ErrUpstreamUnavailable = errors.New("classification service unavailable")

	// ErrStorageUnavailable means the record store is unconfigured or unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports caller input that was rejected before any side effect.
// Message is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a *ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
