package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/template"
)

type stringerValue struct{}

func (stringerValue) String() string { return "from-stringer" }

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("substitutes named placeholders", func(t *testing.T) {
		t.Parallel()
		got, err := template.Render("Hello {name}!", template.Params{"name": "john"})
		require.NoError(t, err)
		assert.Equal(t, "Hello john!", got)
	})

	t.Run("renders non-string values with fmt", func(t *testing.T) {
		t.Parallel()
		got, err := template.Render("{count} items, {ok}, {v}", template.Params{
			"count": 42,
			"ok":    true,
			"v":     stringerValue{},
		})
		require.NoError(t, err)
		assert.Equal(t, "42 items, true, from-stringer", got)
	})

	t.Run("same placeholder may repeat", func(t *testing.T) {
		t.Parallel()
		got, err := template.Render("{a} and {a}", template.Params{"a": "x"})
		require.NoError(t, err)
		assert.Equal(t, "x and x", got)
	})

	t.Run("escape pairs emit literal braces", func(t *testing.T) {
		t.Parallel()
		got, err := template.Render("{{}}", nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", got)

		got, err = template.Render("{{name}} is literal, {name} is not", template.Params{"name": "j"})
		require.NoError(t, err)
		assert.Equal(t, "{name} is literal, j is not", got)
	})

	t.Run("no braces is the identity regardless of params", func(t *testing.T) {
		t.Parallel()
		const raw = "nothing to do here"
		got, err := template.Render(raw, template.Params{"unused": 1})
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()
		_, err := template.Render("Hello {name}!", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, template.ErrMissingParam)

		var missing *template.MissingParamError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "name", missing.Name)
	})

	t.Run("unbalanced braces", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			tmpl   string
			offset int
		}{
			{"oops {", 5},
			{"oops }", 5},
			{"{name", 0},
			{"{not an ident}", 0},
			{"{}", 0},
			{"a } b", 2},
		} {
			_, err := template.Render(tc.tmpl, template.Params{"name": "x"})
			require.Error(t, err, "template %q", tc.tmpl)
			require.ErrorIs(t, err, template.ErrUnbalanced)

			var unbalanced *template.UnbalancedError
			require.ErrorAs(t, err, &unbalanced)
			assert.Equal(t, tc.offset, unbalanced.Offset, "template %q", tc.tmpl)
		}
	})
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("first-appearance order without duplicates", func(t *testing.T) {
		t.Parallel()
		got, err := template.Placeholders("{b} {a} {b}")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, got)
	})

	t.Run("escapes are not placeholders", func(t *testing.T) {
		t.Parallel()
		got, err := template.Placeholders("{{a}} {b}")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, got)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		got, err := template.Placeholders("plain text")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("reports malformed templates", func(t *testing.T) {
		t.Parallel()
		_, err := template.Placeholders("broken {")
		require.ErrorIs(t, err, template.ErrUnbalanced)
	})
}
