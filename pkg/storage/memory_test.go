package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/storage"
)

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round-trips values", func(t *testing.T) {
		t.Parallel()
		s := storage.NewMemory()

		require.NoError(t, s.Set(ctx, "ai_session", "abc|1000|2000"))

		v, ok := s.Get(ctx, "ai_session")
		assert.True(t, ok)
		assert.Equal(t, "abc|1000|2000", v)
	})

	t.Run("missing key reports absent", func(t *testing.T) {
		t.Parallel()
		s := storage.NewMemory()

		_, ok := s.Get(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("always available", func(t *testing.T) {
		t.Parallel()
		assert.True(t, storage.NewMemory().Available(ctx))
	})

	t.Run("overwrites in place", func(t *testing.T) {
		t.Parallel()
		s := storage.NewMemory()

		require.NoError(t, s.Set(ctx, "k", "one"))
		require.NoError(t, s.Set(ctx, "k", "two"))

		v, _ := s.Get(ctx, "k")
		assert.Equal(t, "two", v)
	})
}
