package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithCookieStore sets the primary cookie backend. Required.
func WithCookieStore(store CookieStore) Option {
	return func(m *Manager) {
		m.cookies = store
	}
}

// WithStorage sets the secondary durable storage backend. Optional; without
// it the manager runs cookie-only and warns about reduced durability at
// renewal time.
func WithStorage(storage Storage) Option {
	return func(m *Manager) {
		m.storage = storage
	}
}

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithMaxLifetime sets the maximum session age before forced renewal.
func WithMaxLifetime(d time.Duration) Option {
	return func(m *Manager) {
		m.config.MaxLifetime = d
	}
}

// WithIdleTimeout sets the maximum inactivity gap before forced renewal.
func WithIdleTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.IdleTimeout = d
	}
}

// WithCookieDomain scopes cookie writes to the given domain.
func WithCookieDomain(domain string) Option {
	return func(m *Manager) {
		m.config.CookieDomain = domain
	}
}

// WithNamePrefix appends a disambiguating suffix to the storage key.
func WithNamePrefix(prefix string) Option {
	return func(m *Manager) {
		m.config.NamePrefix = prefix
	}
}

// WithClock sets the time source. Injectable for tests.
func WithClock(clock Clock) Option {
	return func(m *Manager) {
		if clock != nil {
			m.now = clock
		}
	}
}

// WithIDGenerator sets the identifier generator. The generator's output
// must never contain '|'.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithLogger sets the diagnostic logging sink.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
