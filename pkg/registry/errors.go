package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/translatable/pkg/iso639"
)

// Sentinel errors for registry construction and lookup.
var (
	ErrInvalidFile      = errors.New("registry: not a translation file")
	ErrParse            = errors.New("registry: cannot parse translation file")
	ErrMixedContent     = errors.New("registry: mixed object contents")
	ErrInvalidLanguage  = errors.New("registry: invalid language code")
	ErrInvalidTemplate  = errors.New("registry: malformed translation template")
	ErrInvalidRoot      = errors.New("registry: file root is a translation object")
	ErrConflict         = errors.New("registry: structural conflict between files")
	ErrInvalidPath      = errors.New("registry: invalid translation path")
	ErrPathNotFound     = errors.New("registry: path not found")
	ErrNotALeaf         = errors.New("registry: path is not a translation leaf")
	ErrLanguageNotFound = errors.New("registry: language not found at path")
	ErrInvalidSeekMode  = errors.New("registry: invalid seek mode")
	ErrInvalidOverlap   = errors.New("registry: invalid overlap policy")
)

// InvalidFileError reports a discovered file that is not a translation file.
type InvalidFileError struct {
	File string
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("registry: %s is not a translation file", e.File)
}

func (e *InvalidFileError) Unwrap() error { return ErrInvalidFile }

// ParseError reports a translation file whose content could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("registry: cannot parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// MixedContentError reports an object that mixes nested objects and translation
// strings (or holds a value of an unsupported kind) at the same level.
type MixedContentError struct {
	File string
	Path Path
}

func (e *MixedContentError) Error() string {
	return fmt.Sprintf("registry: %s: object at %q mixes nested objects and translations", e.File, displayPath(e.Path))
}

func (e *MixedContentError) Unwrap() error { return ErrMixedContent }

// InvalidLanguageError reports a translation key that is not a valid ISO 639-1
// code. When the code resembles known entries, Suggestions lists them.
type InvalidLanguageError struct {
	File        string
	Path        Path
	Code        string
	Suggestions []string
}

func (e *InvalidLanguageError) Error() string {
	msg := fmt.Sprintf("registry: %q is not a valid ISO 639-1 code", e.Code)
	if e.File != "" {
		msg = fmt.Sprintf("registry: %s: %q at %q is not a valid ISO 639-1 code", e.File, e.Code, displayPath(e.Path))
	}
	if len(e.Suggestions) > 0 {
		msg += "; did you mean: " + strings.Join(e.Suggestions, ", ")
	}
	return msg
}

func (e *InvalidLanguageError) Unwrap() error { return ErrInvalidLanguage }

func newInvalidLanguageError(file string, path Path, code string) *InvalidLanguageError {
	suggestions := iso639.Suggest(code)
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return &InvalidLanguageError{File: file, Path: path, Code: code, Suggestions: suggestions}
}

// InvalidTemplateError reports a translation string whose placeholder braces
// do not parse. Malformed templates fail construction instead of surfacing on
// first render.
type InvalidTemplateError struct {
	File     string
	Path     Path
	Language string
	Err      error
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("registry: %s: malformed template for %q at %q: %v", e.File, e.Language, displayPath(e.Path), e.Err)
}

func (e *InvalidTemplateError) Unwrap() error { return ErrInvalidTemplate }

// InvalidRootError reports a file whose top level is a bare language-to-string
// map. Translations must be nested under at least one path segment.
type InvalidRootError struct {
	File string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("registry: %s: top-level content is a translation object; nest it under a path", e.File)
}

func (e *InvalidRootError) Unwrap() error { return ErrInvalidRoot }

// ConflictError reports a structural clash between two files during merge: the
// same path resolves to a nested object in one and a translation object in the
// other, or a new child would break sibling homogeneity.
type ConflictError struct {
	Path      Path
	File      string
	OtherFile string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("registry: structural conflict at %q between %s and %s", displayPath(e.Path), e.File, e.OtherFile)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// InvalidPathError reports a textual path that does not parse into segments.
type InvalidPathError struct {
	Raw string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("registry: invalid translation path %q", e.Raw)
}

func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

// PathNotFoundError reports a lookup that left the tree. Prefix holds the
// longest sequence of segments that did resolve; it may be empty.
type PathNotFoundError struct {
	Path   Path
	Prefix Path
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("registry: path %q not found (valid prefix %q)", displayPath(e.Path), displayPath(e.Prefix))
}

func (e *PathNotFoundError) Unwrap() error { return ErrPathNotFound }

// NotALeafError reports a path that resolves to a nested object instead of a
// translation leaf.
type NotALeafError struct {
	Path Path
}

func (e *NotALeafError) Error() string {
	return fmt.Sprintf("registry: path %q is a nested object, not a translation leaf", displayPath(e.Path))
}

func (e *NotALeafError) Unwrap() error { return ErrNotALeaf }

// LanguageNotFoundError reports a leaf that exists but carries no translation
// for the requested language.
type LanguageNotFoundError struct {
	Path     Path
	Language string
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("registry: no %q translation at %q", e.Language, displayPath(e.Path))
}

func (e *LanguageNotFoundError) Unwrap() error { return ErrLanguageNotFound }

func displayPath(p Path) string {
	if len(p) == 0 {
		return "<root>"
	}
	return p.String()
}
