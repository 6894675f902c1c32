package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "redis://localhost:6379/0", cfg.ConnectionURL)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	t.Run("zero config becomes the default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, DefaultConfig(), Config{}.normalize())
	})

	t.Run("set fields survive", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			ConnectionURL: "redis://example:6379/1",
			RetryAttempts: 1,
		}.normalize()

		assert.Equal(t, "redis://example:6379/1", cfg.ConnectionURL)
		assert.Equal(t, 1, cfg.RetryAttempts)
		assert.Equal(t, 5*time.Second, cfg.RetryInterval)
	})
}
