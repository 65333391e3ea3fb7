package translatable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), translatable.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := translatable.DefaultConfig()
	assert.Equal(t, "./translations", cfg.Path)
	assert.Equal(t, translatable.SeekAlphabetical, cfg.SeekMode)
	assert.Equal(t, translatable.OverlapOverwrite, cfg.Overlap)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	for name, mutate := range map[string]func(*translatable.Config){
		"empty path":        func(c *translatable.Config) { c.Path = "" },
		"unknown seek mode": func(c *translatable.Config) { c.SeekMode = "random" },
		"unknown overlap":   func(c *translatable.Config) { c.Overlap = "merge" },
	} {
		cfg := translatable.DefaultConfig()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), translatable.ErrInvalidConfig, name)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := translatable.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, translatable.DefaultConfig(), cfg)
	})

	t.Run("reads every field", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
path = "./locales"
seek_mode = "unalphabetical"
overlap = "ignore"
`)
		cfg, err := translatable.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "./locales", cfg.Path)
		assert.Equal(t, translatable.SeekUnalphabetical, cfg.SeekMode)
		assert.Equal(t, translatable.OverlapIgnore, cfg.Overlap)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `path = "./locales"`)
		cfg, err := translatable.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "./locales", cfg.Path)
		assert.Equal(t, translatable.SeekAlphabetical, cfg.SeekMode)
		assert.Equal(t, translatable.OverlapOverwrite, cfg.Overlap)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `= broken`)
		_, err := translatable.LoadConfig(path)
		require.ErrorIs(t, err, translatable.ErrInvalidConfig)
	})

	t.Run("rejects unknown enum values", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `seek_mode = "random"`)
		_, err := translatable.LoadConfig(path)
		require.Error(t, err)
	})
}
