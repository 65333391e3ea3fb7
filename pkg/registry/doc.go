// Package registry builds and queries the merged translation tree.
//
// A registry is constructed from a set of discovered translation files. Each
// file decodes (TOML, YAML or JSON, by extension) into a tree of nested objects
// whose leaves map ISO 639-1 language codes to raw template strings. Files are
// merged in a deterministic order controlled by a seek mode, and duplicate
// (path, language) definitions are resolved by an overlap policy:
//
//	reg, err := registry.Build(files,
//		registry.WithSeekMode(registry.SeekAlphabetical),
//		registry.WithOverlap(registry.OverlapOverwrite),
//	)
//
// Four structural rules hold for every file and for the merged result: an
// object's children are either all nested objects or all translation objects,
// never both; translation keys must be valid ISO 639-1 codes; translation
// strings must have well-formed placeholder braces; and the root is always a
// nested object. Violations abort construction with a typed error - there is
// no partial registry.
//
// Once built, a Registry is immutable and safe for concurrent lookups:
//
//	path, _ := registry.ParsePath("common.greeting")
//	tmpl, err := reg.LookupLanguage(path, "es")
//
// All lookup errors carry the offending path (and, for missing paths, the
// longest prefix that resolved) and unwrap to package sentinels for errors.Is.
package registry
