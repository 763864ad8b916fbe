package domain

import "errors"

// Common domain errors used across the application.
// Callers check for these with errors.Is; the API layer maps them to
// HTTP status codes.
var (
	// ErrValidation is returned when input is missing or malformed.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrIndexOutOfRange is returned when a task index does not resolve
	// to an element of the date's task list.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrNotFound is returned when a team/date association does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorageCorrupt is returned when the durable task document exists
	// but cannot be parsed.
	ErrStorageCorrupt = errors.New("task storage corrupt")

	// ErrStorageWrite is returned when persisting the task document fails.
	// After this error the in-memory and durable copies may differ.
	ErrStorageWrite = errors.New("task storage write failed")

	// ErrDelivery is returned when a digest message cannot be dispatched.
	// Delivery failures are isolated per account and never abort a batch.
	ErrDelivery = errors.New("digest delivery failed")
)
