package redis

import "time"

// Config describes the connection to the Redis server backing the durable
// storage option.
type Config struct {
	// ConnectionURL in the form "redis://:password@localhost:6379/0".
	ConnectionURL string `env:"BEACON_REDIS_URL" envDefault:"redis://localhost:6379/0"`

	// RetryAttempts is how many times Connect dials before giving up.
	RetryAttempts int `env:"BEACON_REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between failed attempts.
	RetryInterval time.Duration `env:"BEACON_REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// ConnectTimeout bounds the whole connection phase, retries included.
	ConnectTimeout time.Duration `env:"BEACON_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns default connection configuration.
func DefaultConfig() Config {
	return Config{
		ConnectionURL:  "redis://localhost:6379/0",
		RetryAttempts:  3,
		RetryInterval:  5 * time.Second,
		ConnectTimeout: 30 * time.Second,
	}
}

// normalize substitutes defaults for unset fields so a zero-valued Config
// still dials at least once.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.ConnectionURL == "" {
		c.ConnectionURL = def.ConnectionURL
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = def.RetryAttempts
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = def.RetryInterval
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	return c
}
