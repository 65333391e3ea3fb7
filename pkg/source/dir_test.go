package source_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/source"
)

func TestDir(t *testing.T) {
	t.Parallel()

	t.Run("lists every regular file recursively", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app.toml":        {Data: []byte("a")},
			"nested/ui.toml":  {Data: []byte("b")},
			"nested/deep/x.y": {Data: []byte("c")},
		}

		files, err := source.Dir(fsys).Files(context.Background())
		require.NoError(t, err)
		require.Len(t, files, 3)

		byPath := make(map[string]string, len(files))
		for _, f := range files {
			byPath[f.Path] = string(f.Data)
		}
		assert.Equal(t, map[string]string{
			"app.toml":        "a",
			"nested/ui.toml":  "b",
			"nested/deep/x.y": "c",
		}, byPath)
	})

	t.Run("empty tree yields no files", func(t *testing.T) {
		t.Parallel()
		files, err := source.Dir(fstest.MapFS{}).Files(context.Background())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source.Dir(fstest.MapFS{"a.toml": {Data: []byte("x")}}).Files(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatic(t *testing.T) {
	t.Parallel()

	files := source.Static{{Path: "a.toml", Data: []byte("x")}}
	got, err := files.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []source.File(files), got)
}
