package headscan_test

import (
	"testing"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/stretchr/testify/assert"
)

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	t.Run("defaults pass through unchanged", func(t *testing.T) {
		t.Parallel()

		cfg := headscan.DefaultConfig()

		assert.Equal(t, cfg, cfg.Normalize())
	})

	t.Run("clamps thresholds into 1..100", func(t *testing.T) {
		t.Parallel()

		cfg := headscan.DefaultConfig()
		cfg.DuplicateThreshold = 0
		cfg.CannibalizationThreshold = 150

		got := cfg.Normalize()

		assert.Equal(t, 1, got.DuplicateThreshold)
		assert.Equal(t, 100, got.CannibalizationThreshold)
	})

	t.Run("raises max length to min length", func(t *testing.T) {
		t.Parallel()

		cfg := headscan.DefaultConfig()
		cfg.MinLength = 20
		cfg.MaxLength = 5

		got := cfg.Normalize()

		assert.Equal(t, 20, got.MinLength)
		assert.Equal(t, 20, got.MaxLength)
	})

	t.Run("restores empty heading levels", func(t *testing.T) {
		t.Parallel()

		cfg := headscan.DefaultConfig()
		cfg.HeadingLevels = nil

		got := cfg.Normalize()

		assert.Equal(t, []string{"h2", "h3", "h4", "h5", "h6"}, got.HeadingLevels)
	})

	t.Run("rejects unknown insert positions", func(t *testing.T) {
		t.Parallel()

		cfg := headscan.DefaultConfig()
		cfg.TOCInsertPosition = "sideways"

		assert.Equal(t, headscan.InsertBeforeFirstHeading, cfg.Normalize().TOCInsertPosition)
	})
}
