package domain

import "errors"

var (
	// ErrCardNotFound is returned when a card does not exist or is not
	// active. The two cases are deliberately indistinguishable so the
	// tap path does not leak card status.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidEventType is returned when an event carries a value
	// outside the closed event type enumeration.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrStoreUnavailable is returned when the event store cannot be
	// reached; callers may retry.
	ErrStoreUnavailable = errors.New("event store unavailable")
)
