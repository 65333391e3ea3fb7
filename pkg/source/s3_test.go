package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/source"
)

func TestS3Config(t *testing.T) {
	t.Parallel()

	valid := source.S3Config{
		Bucket:    "translations",
		AccessKey: "key",
		SecretKey: "secret",
	}

	t.Run("accepts a complete configuration", func(t *testing.T) {
		t.Parallel()
		src, err := source.S3(valid)
		require.NoError(t, err)
		assert.NotNil(t, src)
	})

	t.Run("requires bucket, access key and secret key", func(t *testing.T) {
		t.Parallel()
		for name, mutate := range map[string]func(*source.S3Config){
			"bucket":     func(c *source.S3Config) { c.Bucket = "" },
			"access key": func(c *source.S3Config) { c.AccessKey = "" },
			"secret key": func(c *source.S3Config) { c.SecretKey = "" },
		} {
			cfg := valid
			mutate(&cfg)
			_, err := source.S3(cfg)
			require.ErrorIs(t, err, source.ErrInvalidConfig, "missing %s", name)
		}
	})

	t.Run("accepts custom endpoint settings", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.Endpoint = "http://localhost:9000"
		cfg.PathStyle = true
		cfg.Prefix = "locales"

		src, err := source.S3(cfg)
		require.NoError(t, err)
		assert.NotNil(t, src)
	})
}
