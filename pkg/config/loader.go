package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache keeps one parsed copy of every configuration type for the
// process lifetime, so every component asking for the same Config sees the
// same view of the environment no matter when it asks.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func (c *typeCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *typeCache) onceFor(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	once, ok := c.onces[key]
	if !ok {
		once = new(sync.Once)
		c.onces[key] = once
	}
	return once
}

func (c *typeCache) put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
}

var (
	cache = &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	dotenvOnce sync.Once
)

// Load parses environment variables into the provided configuration struct
// based on its `env` tags. The default .env file is read once per process
// before the first parse; after that, each configuration type is parsed at
// most once and served from cache, so a session.Config loaded by the
// application and one loaded deep inside a library are guaranteed to
// match.
//
// Example:
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal case outside development.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if cached, ok := cache.lookup(key); ok {
		*v = cached.(T)
		return nil
	}

	var err error

	// The per-type once guarantees the environment is parsed a single time
	// even under concurrent first loads.
	cache.onceFor(key).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		// Store a copy so callers cannot mutate the cached value.
		cache.put(key, *v)
	})

	if err != nil {
		return err
	}

	if cached, ok := cache.lookup(key); ok {
		*v = cached.(T)
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics when loading fails. For
// configurations the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// typeKey returns a string identifier for the generic type T.
func typeKey[T any]() string {
	t := reflect.TypeOf(*new(T))
	if t == nil {
		// Interface types have no concrete reflect.Type.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
