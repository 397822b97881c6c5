package common

import (
	"errors"
	"fmt"
)

var (
	// Bootstrap errors.
	ErrConfigNotDefined = errors.New("registration payload not defined")
	ErrNotBootstrapped  = errors.New("session not bootstrapped")
	ErrSessionLocked    = errors.New("device session locked by another process")

	// Payload decoding errors.
	ErrMissingField     = errors.New("missing field")
	ErrMalformedPayload = errors.New("malformed payload")

	// Storage location errors.
	ErrDirectoryUnavailable = errors.New("storage directory unavailable")

	// Local store errors.
	ErrStoreOpenFailed    = errors.New("store open failed")
	ErrSchemaCreateFailed = errors.New("schema create failed")
	ErrQueryFailed        = errors.New("query failed")

	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrInvalidServerID = errors.New("invalid server id")
)

// MissingFieldError reports a required payload field that is absent or has
// the wrong type.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Is lets errors.Is(err, ErrMissingField) match any MissingFieldError.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
