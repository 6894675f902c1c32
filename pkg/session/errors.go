package session

import "errors"

var (
	// ErrMalformedTimestamp indicates a persisted timestamp field could not
	// be coerced to a number. Recovered locally, never returned to callers.
	ErrMalformedTimestamp = errors.New("session.malformed_timestamp")
)
