package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the provided .env files. When
// called without arguments it loads the default .env from the current
// working directory. Later files take precedence over earlier ones, and
// both override already-set process environment variables.
//
// Example:
//
//	if err := config.LoadEnv(".env", ".env.local"); err != nil {
//	    // Handle error
//	}
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics if loading fails.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache clears all cached configuration values so the next Load parses
// the environment again. Intended for tests.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.values = make(map[string]any)
	cache.onces = make(map[string]*sync.Once)
}

// ForceReloadConfig re-parses the environment into the provided struct and
// replaces the cached copy, bypassing the load-once guarantee. Useful when
// the process environment changed after the initial Load.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	key := typeKey[T]()

	cache.mu.Lock()
	cache.values[key] = *v
	cache.onces[key] = new(sync.Once)
	cache.mu.Unlock()

	return nil
}
