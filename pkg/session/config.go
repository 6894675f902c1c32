package session

import "time"

// storageKeyBase is the shared cookie/durable-storage key namespace.
// A configured NamePrefix is appended to disambiguate multiple
// instrumented applications on the same host.
const storageKeyBase = "ai_session"

// cookieUpdateInterval is the minimum spacing between keep-alive cookie
// writes when no renewal is due. Forced renewals bypass it. Independent of
// configuration so that write volume stays bounded regardless of timeouts.
const cookieUpdateInterval = time.Minute

// Config holds session lifecycle configuration.
type Config struct {
	// MaxLifetime is the maximum age since acquisition before forced renewal.
	MaxLifetime time.Duration `env:"BEACON_SESSION_MAX_LIFETIME" envDefault:"24h"`

	// IdleTimeout is the maximum inactivity gap before forced renewal.
	IdleTimeout time.Duration `env:"BEACON_SESSION_IDLE_TIMEOUT" envDefault:"30m"`

	// CookieDomain optionally scopes the cookie write to a domain.
	CookieDomain string `env:"BEACON_SESSION_COOKIE_DOMAIN" envDefault:""`

	// NamePrefix disambiguates the storage key when several instrumented
	// applications share a host.
	NamePrefix string `env:"BEACON_SESSION_NAME_PREFIX" envDefault:""`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		MaxLifetime: 24 * time.Hour,
		IdleTimeout: 30 * time.Minute,
	}
}

// normalize substitutes explicit defaults for unset duration fields so the
// manager never computes expiry against a zero window.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.MaxLifetime <= 0 {
		c.MaxLifetime = def.MaxLifetime
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	return c
}

// storageKey returns the key both backends are addressed with.
func (c Config) storageKey() string {
	return storageKeyBase + c.NamePrefix
}

// NewFromConfig creates a new Manager from the provided Config.
// A cookie store is still required via options.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
