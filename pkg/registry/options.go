package registry

import (
	"fmt"
	"log/slog"
)

// SeekMode declares the direction in which discovered files are merged.
type SeekMode string

const (
	// SeekAlphabetical merges files in ascending path order.
	SeekAlphabetical SeekMode = "alphabetical"
	// SeekUnalphabetical merges files in descending path order.
	SeekUnalphabetical SeekMode = "unalphabetical"
)

// Valid reports whether the seek mode is one of the declared values.
func (m SeekMode) Valid() bool {
	return m == SeekAlphabetical || m == SeekUnalphabetical
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (m *SeekMode) UnmarshalText(text []byte) error {
	mode := SeekMode(text)
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeekMode, string(text))
	}
	*m = mode
	return nil
}

// Overlap declares which of two same-path, same-language definitions survives
// the merge.
type Overlap string

const (
	// OverlapOverwrite lets the later file in merge order win.
	OverlapOverwrite Overlap = "overwrite"
	// OverlapIgnore keeps the earlier file's value and discards later ones.
	OverlapIgnore Overlap = "ignore"
)

// Valid reports whether the overlap policy is one of the declared values.
func (o Overlap) Valid() bool {
	return o == OverlapOverwrite || o == OverlapIgnore
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (o *Overlap) UnmarshalText(text []byte) error {
	policy := Overlap(text)
	if !policy.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOverlap, string(text))
	}
	*o = policy
	return nil
}

// BuildOption configures registry construction.
type BuildOption func(*builder)

// WithSeekMode sets the merge direction. Defaults to SeekAlphabetical.
func WithSeekMode(mode SeekMode) BuildOption {
	return func(b *builder) {
		b.seek = mode
	}
}

// WithOverlap sets the conflict policy for duplicate definitions.
// Defaults to OverlapOverwrite.
func WithOverlap(policy Overlap) BuildOption {
	return func(b *builder) {
		b.overlap = policy
	}
}

// WithLogger sets the logger used to trace file ordering and merge decisions.
// If nil, logging is disabled.
func WithLogger(log *slog.Logger) BuildOption {
	return func(b *builder) {
		if log != nil {
			b.log = log
		}
	}
}
