package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better is known.
const DefaultLanguage = "ar"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger reports missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// Translator is read-only after construction and safe for concurrent use.
type Translator struct {
	tables      map[string]map[string]string
	defaultLang string
	langs       []string
	matcher     language.Matcher
	logger      *slog.Logger
}

// NewTranslator loads every YAML file at the root of fsys.
func NewTranslator(ctx context.Context, fsys fs.FS, opts ...Option) (*Translator, error) {
	t := &Translator{
		tables:      make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		content, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		merge(t.tables, parsed)
	}
	if len(t.tables) == 0 {
		return nil, ErrNoTranslations
	}

	if err := t.buildMatcher(); err != nil {
		return nil, err
	}
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// The default language goes first so the matcher falls back to it.
func (t *Translator) buildMatcher() error {
	langs := make([]string, 0, len(t.tables))
	for lang := range t.tables {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	if _, ok := t.tables[t.defaultLang]; ok {
		langs = append([]string{t.defaultLang}, langs...)
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
		}
		tags = append(tags, tag)
	}
	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	return nil
}

// Languages lists the loaded languages, default first.
func (t *Translator) Languages() []string { return slices.Clone(t.langs) }

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Supports reports whether lang has a translation table.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// Match picks the best loaded language for the given preferences, which may
// be plain tags ("en-GB") or Accept-Language header values.
func (t *Translator) Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// T translates key into lang, falling back to the default language and then
// to the key itself. args are name/value pairs; an odd trailing name is
// ignored.
func (t *Translator) T(lang, key string, args ...string) string {
	msg, ok := t.lookup(lang, key)
	if !ok {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		msg = key
	}
	if len(args) < 2 {
		return msg
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(msg, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Tc translates into the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if msg, ok := t.tables[lang][key]; ok {
		return msg, true
	}
	msg, ok := t.tables[t.defaultLang][key]
	return msg, ok
}
