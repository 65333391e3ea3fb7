package translatable

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/translatable/pkg/source"
)

type settings struct {
	ctx context.Context
	cfg Config
	src source.Source
	log *slog.Logger
}

// Option configures New.
type Option func(*settings)

// WithConfig replaces the default configuration. Combine with LoadConfig to
// honor a translatable.toml file.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithSource replaces directory discovery with a custom file source, such as
// source.Static for embedded data or source.S3 for remote buckets. The
// configured path is ignored when a source is set.
func WithSource(src source.Source) Option {
	return func(s *settings) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSeekMode overrides the configured file ordering.
func WithSeekMode(mode SeekMode) Option {
	return func(s *settings) {
		s.cfg.SeekMode = mode
	}
}

// WithOverlap overrides the configured duplicate policy.
func WithOverlap(policy Overlap) Option {
	return func(s *settings) {
		s.cfg.Overlap = policy
	}
}

// WithLogger sets the logger used during construction. Merge and overlap
// decisions are logged at debug level. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithContext sets the context used for file discovery, which may perform
// network calls for remote sources. Defaults to context.Background.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}
