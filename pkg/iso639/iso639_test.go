package iso639_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/iso639"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	t.Run("accepts known codes", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"en", "es", "fr", "de", "zh", "aa", "zu"} {
			assert.True(t, iso639.IsValid(code), "expected %q to be valid", code)
		}
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"", "e", "eng", "xx", "qq", "en-US"} {
			assert.False(t, iso639.IsValid(code), "expected %q to be invalid", code)
		}
	})

	t.Run("is case-sensitive on the canonical form", func(t *testing.T) {
		t.Parallel()
		assert.False(t, iso639.IsValid("EN"))
		assert.False(t, iso639.IsValid("En"))
	})
}

func TestName(t *testing.T) {
	t.Parallel()

	name, ok := iso639.Name("es")
	require.True(t, ok)
	assert.Equal(t, "Spanish", name)

	_, ok = iso639.Name("xx")
	assert.False(t, ok)
}

func TestCodes(t *testing.T) {
	t.Parallel()

	all := iso639.Codes()
	require.NotEmpty(t, all)
	assert.True(t, sort.StringsAreSorted(all))
	assert.GreaterOrEqual(t, len(all), 180)

	for _, code := range all {
		assert.Len(t, code, 2)
		assert.True(t, iso639.IsValid(code))
	}

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		first := iso639.Codes()
		first[0] = "mutated"
		assert.NotEqual(t, first[0], iso639.Codes()[0])
	})
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	t.Run("matches by code substring", func(t *testing.T) {
		t.Parallel()
		got := iso639.Suggest("en")
		assert.Contains(t, got, "en (English)")
	})

	t.Run("matches by name substring", func(t *testing.T) {
		t.Parallel()
		got := iso639.Suggest("spani")
		assert.Equal(t, []string{"es (Spanish)"}, got)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, iso639.Suggest(""))
		assert.Empty(t, iso639.Suggest("   "))
	})
}
