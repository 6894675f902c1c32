package config

import "errors"

var (
	// ErrParsingConfig wraps env tag parsing failures, including missing
	// required variables.
	ErrParsingConfig = errors.New("config.parse_failed")

	// ErrConfigNotLoaded signals that a type's parse was skipped yet nothing
	// ended up in the cache. Should not happen in practice.
	ErrConfigNotLoaded = errors.New("config.not_loaded")

	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrLoadingEnv is returned when a .env file cannot be read.
	ErrLoadingEnv = errors.New("config.env_file_unreadable")
)
