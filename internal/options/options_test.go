package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeConfig struct {
	size    int
	verbose bool
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &fakeConfig{}
		err := Apply(cfg,
			NoError(func(c *fakeConfig) { c.size = 8 }),
			NoError(func(c *fakeConfig) { c.size = 16 }),
			NoError(func(c *fakeConfig) { c.verbose = true }),
		)
		require.NoError(t, err)
		require.Equal(t, 16, cfg.size)
		require.True(t, cfg.verbose)
	})

	t.Run("stops at first error", func(t *testing.T) {
		boom := errors.New("boom")
		cfg := &fakeConfig{}
		err := Apply(cfg,
			NoError(func(c *fakeConfig) { c.size = 8 }),
			New(func(c *fakeConfig) error { return boom }),
			NoError(func(c *fakeConfig) { c.size = 99 }),
		)
		require.ErrorIs(t, err, boom)
		require.Equal(t, 8, cfg.size)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &fakeConfig{size: 1}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 1, cfg.size)
	})
}
