package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/registry"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	t.Run("parses dot-separated segments", func(t *testing.T) {
		t.Parallel()
		p, err := registry.ParsePath("common.greeting")
		require.NoError(t, err)
		assert.Equal(t, registry.Path{"common", "greeting"}, p)
		assert.Equal(t, "common.greeting", p.String())
	})

	t.Run("single segment", func(t *testing.T) {
		t.Parallel()
		p, err := registry.ParsePath("welcome_message")
		require.NoError(t, err)
		assert.Equal(t, registry.Path{"welcome_message"}, p)
	})

	t.Run("underscores and digits allowed after the first character", func(t *testing.T) {
		t.Parallel()
		p, err := registry.ParsePath("_private.item2")
		require.NoError(t, err)
		assert.Equal(t, "_private.item2", p.String())
	})

	t.Run("rejects malformed paths", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", ".", "a.", ".a", "a..b", "2fast", "a.b-c", "a b"} {
			_, err := registry.ParsePath(raw)
			require.Error(t, err, "path %q", raw)
			require.ErrorIs(t, err, registry.ErrInvalidPath)

			var invalid *registry.InvalidPathError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, raw, invalid.Raw)
		}
	})
}
