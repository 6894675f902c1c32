package beacon

import (
	"time"

	"github.com/dmitrymomot/beacon/pkg/session"
)

// Config holds tracker configuration.
type Config struct {
	// Service names the emitting application on every envelope.
	Service string `env:"BEACON_SERVICE" envDefault:""`

	// BufferSize caps queued envelopes; Track drops when full.
	BufferSize int `env:"BEACON_BUFFER_SIZE" envDefault:"1000"`

	// BatchSize is the delivery batch target.
	BatchSize int `env:"BEACON_BATCH_SIZE" envDefault:"100"`

	// FlushInterval bounds how long a partial batch waits for delivery.
	FlushInterval time.Duration `env:"BEACON_FLUSH_INTERVAL" envDefault:"10s"`

	// BackupInterval is the cadence of durable-storage session checkpoints.
	BackupInterval time.Duration `env:"BEACON_BACKUP_INTERVAL" envDefault:"1m"`

	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `env:"BEACON_SEND_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns default tracker configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize:     1000,
		BatchSize:      100,
		FlushInterval:  10 * time.Second,
		BackupInterval: time.Minute,
		SendTimeout:    5 * time.Second,
	}
}

// normalize substitutes defaults for unset fields.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = def.BufferSize
	}
	if c.BatchSize <= 0 {
		c.BatchSize = def.BatchSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = def.FlushInterval
	}
	if c.BackupInterval <= 0 {
		c.BackupInterval = def.BackupInterval
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = def.SendTimeout
	}
	return c
}

// NewFromConfig creates a new Tracker from the provided Config.
func NewFromConfig(cfg Config, sender Sender, manager *session.Manager, opts ...Option) *Tracker {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(sender, manager, configOpts...)
}
