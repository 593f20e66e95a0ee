package types

import "errors"

var (
	// ErrUnsupportedDestination marks a destination outside the served region.
	ErrUnsupportedDestination = errors.New("destination not in supported region")

	// ErrInvalidRequest marks a request rejected by the validation gate.
	ErrInvalidRequest = errors.New("invalid trip request")

	// ErrModelUnavailable marks a failed language model call. The planner
	// falls back to a synthesized plan when it sees this.
	ErrModelUnavailable = errors.New("language model unavailable")

	// ErrProviderUnavailable marks an external data provider that could not
	// be reached. Callers substitute curated fallback data.
	ErrProviderUnavailable = errors.New("data provider unavailable")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")
)
