package translatable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dmitrymomot/translatable/pkg/registry"
)

// DefaultConfigFile is the conventional configuration file name, looked up in
// the working directory.
const DefaultConfigFile = "translatable.toml"

// DefaultPath is the translation root used when no path is configured.
const DefaultPath = "./translations"

// Re-exported enum types so most callers only import this package.
type (
	// SeekMode declares the direction in which discovered files are merged.
	SeekMode = registry.SeekMode
	// Overlap declares which duplicate definition survives the merge.
	Overlap = registry.Overlap
)

// Re-exported enum values.
const (
	SeekAlphabetical   = registry.SeekAlphabetical
	SeekUnalphabetical = registry.SeekUnalphabetical
	OverlapOverwrite   = registry.OverlapOverwrite
	OverlapIgnore      = registry.OverlapIgnore
)

// ErrInvalidConfig reports a configuration that cannot be used to build a
// registry.
var ErrInvalidConfig = errors.New("translatable: invalid configuration")

// Config controls file discovery and merging. The zero value is not usable
// directly; use DefaultConfig or LoadConfig, or fill every field.
type Config struct {
	// Path is the root directory containing translation files.
	Path string `toml:"path"`

	// SeekMode orders discovered files before merging.
	SeekMode SeekMode `toml:"seek_mode"`

	// Overlap picks the survivor of duplicate (path, language) definitions.
	Overlap Overlap `toml:"overlap"`
}

// DefaultConfig returns the configuration used when no translatable.toml
// exists: ./translations, alphabetical, overwrite.
func DefaultConfig() Config {
	return Config{
		Path:     DefaultPath,
		SeekMode: SeekAlphabetical,
		Overlap:  OverlapOverwrite,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidConfig)
	}
	if !c.SeekMode.Valid() {
		return fmt.Errorf("%w: seek_mode %q", ErrInvalidConfig, string(c.SeekMode))
	}
	if !c.Overlap.Valid() {
		return fmt.Errorf("%w: overlap %q", ErrInvalidConfig, string(c.Overlap))
	}
	return nil
}

// LoadConfig reads a TOML configuration file. A missing file is not an error:
// it yields DefaultConfig, matching the convention that translatable.toml is
// optional. Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
