package translatable

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/translatable/pkg/iso639"
	"github.com/dmitrymomot/translatable/pkg/registry"
	"github.com/dmitrymomot/translatable/pkg/source"
	"github.com/dmitrymomot/translatable/pkg/template"
)

// Params is re-exported so most callers only import this package.
type Params = template.Params

// Translations resolves (language, path) pairs into rendered strings against a
// registry built once at construction. It is immutable and safe for concurrent
// use.
type Translations struct {
	registry  *registry.Registry
	matcher   language.Matcher
	languages []string
	log       *slog.Logger
}

// New discovers, parses and merges translation files into an immutable
// Translations instance. Construction is fail-fast: any discovery, parse or
// merge error aborts and no partial instance is returned.
//
// Without options, files are discovered under DefaultConfig().Path.
func New(opts ...Option) (*Translations, error) {
	s := settings{
		ctx: context.Background(),
		cfg: DefaultConfig(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	src := s.src
	if src == nil {
		src = source.DirPath(s.cfg.Path)
	}

	s.log.Debug("discovering translation files", "path", s.cfg.Path)
	files, err := src.Files(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("translatable: discovering translation files: %w", err)
	}

	reg, err := registry.Build(files,
		registry.WithSeekMode(s.cfg.SeekMode),
		registry.WithOverlap(s.cfg.Overlap),
		registry.WithLogger(s.log),
	)
	if err != nil {
		return nil, err
	}

	languages := reg.AllLanguages()
	tags := make([]language.Tag, len(languages))
	for i, code := range languages {
		tags[i] = language.Make(code)
	}

	t := &Translations{
		registry:  reg,
		languages: languages,
		log:       s.log,
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}

	s.log.Info("translation registry built",
		"files", len(files), "languages", len(languages))
	return t, nil
}

// Translate resolves and renders a translation at call time. The language is
// normalized (case, region subtags) before validation against the ISO 639-1
// table; lookup and rendering short-circuit on the first error. A missing
// language never falls back to another one.
func (t *Translations) Translate(lang, path string, params Params) (string, error) {
	code, err := t.normalizeLanguage(lang)
	if err != nil {
		return "", err
	}
	p, err := registry.ParsePath(path)
	if err != nil {
		return "", err
	}
	tmpl, err := t.registry.LookupLanguage(p, code)
	if err != nil {
		return "", err
	}
	return template.Render(tmpl, params)
}

// Validate performs the checks of Translate without rendering, so callers that
// know (language, path) ahead of time can fail fast. When params is nil the
// parameter set is treated as not yet known and the placeholder-coverage check
// is skipped; a non-nil map (even empty) is asserted to be complete. The
// checks are shared with Translate and never diverge from it.
func (t *Translations) Validate(lang, path string, params Params) error {
	code, err := t.normalizeLanguage(lang)
	if err != nil {
		return err
	}
	p, err := registry.ParsePath(path)
	if err != nil {
		return err
	}
	tmpl, err := t.registry.LookupLanguage(p, code)
	if err != nil {
		return err
	}

	names, err := template.Placeholders(tmpl)
	if err != nil {
		return err
	}
	if params == nil {
		return nil
	}
	for _, name := range names {
		if _, ok := params[name]; !ok {
			return &template.MissingParamError{Name: name}
		}
	}
	return nil
}

// Registry exposes the underlying merged tree for existence checks and
// introspection.
func (t *Translations) Registry() *registry.Registry {
	return t.registry
}

// Languages returns the sorted union of language codes present in the
// registry.
func (t *Translations) Languages() []string {
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// MatchLanguage picks the best registry language for an Accept-Language
// header. It returns the first registry language when the header is empty or
// unparsable, and "" when the registry holds no translations at all.
func (t *Translations) MatchLanguage(header string) string {
	if len(t.languages) == 0 {
		return ""
	}
	if header == "" {
		return t.languages[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return t.languages[0]
	}

	_, index, _ := t.matcher.Match(desired...)
	return t.languages[index]
}

// normalizeLanguage folds a caller-supplied language string to its two-letter
// base form and validates it against the embedded ISO 639-1 table.
func (t *Translations) normalizeLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", invalidLanguage(lang)
	}

	base, _ := tag.Base()
	code := base.String()
	if len(code) != 2 || !iso639.IsValid(code) {
		return "", invalidLanguage(lang)
	}
	return code, nil
}

func invalidLanguage(lang string) error {
	suggestions := iso639.Suggest(lang)
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return &registry.InvalidLanguageError{Code: lang, Suggestions: suggestions}
}
