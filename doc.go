// Package translatable resolves translations from structured files at runtime.
//
// Translation files (TOML, YAML or JSON) are discovered under a root
// directory, parsed into trees of nested objects with language-to-text leaves,
// and merged into a single immutable registry. Every leaf maps ISO 639-1
// language codes to raw template strings with {name} placeholders.
//
// # Quick Start
//
// Build a registry from ./translations and resolve a message:
//
//	t, err := translatable.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := t.Translate("es", "common.greeting", translatable.Params{
//	    "name": "john",
//	})
//	// msg == "¡Hola john!"
//
// # Configuration
//
// Discovery and merge behavior is controlled by a Config, conventionally
// loaded from translatable.toml:
//
//	cfg, err := translatable.LoadConfig(translatable.DefaultConfigFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := translatable.New(translatable.WithConfig(cfg))
//
// SeekMode orders the discovered files and Overlap picks the survivor when two
// files define the same (path, language) pair, so the merged registry is fully
// deterministic regardless of filesystem iteration order.
//
// # Sources
//
// Files come from the configured directory by default. Any other origin can be
// plugged in through [pkg/source.Source]; the package ships sources for fs.FS
// trees, in-memory data and S3-compatible buckets:
//
//	t, err := translatable.New(translatable.WithSource(source.Dir(embeddedFS)))
//
// # Validation
//
// Validate performs the exact checks of Translate without rendering, so
// callers that know their (language, path) pairs up front can fail at startup
// instead of at request time:
//
//	if err := t.Validate("es", "common.greeting", translatable.Params{"name": ""}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every failure unwraps to a sentinel in [pkg/registry] or [pkg/template]
// (registry.ErrPathNotFound, registry.ErrLanguageNotFound,
// template.ErrMissingParam, ...) and carries a typed error with the offending
// path, language or parameter name.
package translatable
