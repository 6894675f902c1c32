package redis

import "errors"

var (
	// ErrInvalidConnectionURL indicates the connection string could not be
	// parsed.
	ErrInvalidConnectionURL = errors.New("redis.invalid_connection_url")

	// ErrNotReady indicates the server did not answer within the configured
	// attempts and timeout.
	ErrNotReady = errors.New("redis.not_ready")

	// ErrHealthcheckFailed indicates a liveness probe got no PING reply.
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
