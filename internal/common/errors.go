// Package common defines shared constants and sentinel errors used across
// EcoTracker components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Persistence-layer errors (failed open / migration / quota).
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Action catalog errors.
	ErrorUnknownAction = errors.New("unknown action")
)
