// Package config loads typed configuration structs from environment
// variables, with optional .env file support and process-wide caching.
//
// It builds on github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for .env files. Each configuration type is
// parsed at most once per process and served from an in-memory cache
// afterwards, so a session.Config loaded at startup and one loaded deep
// inside a library constructor always agree.
//
// # Usage
//
// Annotate struct fields with env tags and call Load:
//
//	type Config struct {
//	    MaxLifetime time.Duration `env:"BEACON_SESSION_MAX_LIFETIME" envDefault:"24h"`
//	    NamePrefix  string        `env:"BEACON_SESSION_NAME_PREFIX"`
//	}
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot run without. The default .env in the working directory is
// read once before the first parse; LoadEnv and MustLoadEnv load explicit
// files, with later files overriding earlier ones.
//
// # Testing
//
// The cache works against tests that mutate the environment, so two
// escape hatches exist: ResetCache drops every cached value, and
// ForceReloadConfig re-parses a single type in place, replacing its
// cached copy.
//
// # Errors
//
// Failures wrap one of the package sentinels so callers can branch with
// errors.Is: ErrParsingConfig for tag parsing and missing required
// variables, ErrNilPointer for a nil destination, ErrLoadingEnv for an
// unreadable .env file.
package config
