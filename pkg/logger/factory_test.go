package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf))
		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf), logger.WithTextFormatter())
		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("info level by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf))
		log.Debug("invisible")

		assert.Empty(t, buf.String())
	})

	t.Run("custom level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("static attrs on every record", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "beacon-test")),
		)
		log.Info("hello")

		assert.Contains(t, buf.String(), "beacon-test")
	})

	t.Run("development preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		log := logger.New(logger.WithOutput(&buf), logger.WithDevelopment("svc"))
		log.Debug("dev noise")

		assert.Contains(t, buf.String(), "dev noise")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("yaml")))
		})
	})
}
