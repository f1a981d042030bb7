package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden is returned when the viewer lacks the privileged role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when an identity is absent from the store.
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable marks a transient record-store failure. The cache
	// recovers it on reads by serving stale data; writes surface it as-is.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ValidationError rejects malformed input before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
