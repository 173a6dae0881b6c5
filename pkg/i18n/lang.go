package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// SetLocale stores lang in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the language in ctx or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	if lang, _ := ctx.Value(localeContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}

var rtlScripts = map[language.Script]struct{}{
	language.MustParseScript("Arab"): {},
	language.MustParseScript("Hebr"): {},
	language.MustParseScript("Syrc"): {},
	language.MustParseScript("Thaa"): {},
	language.MustParseScript("Nkoo"): {},
	language.MustParseScript("Adlm"): {},
}

// Dir returns "rtl" for languages written right to left and "ltr" otherwise.
func Dir(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "ltr"
	}
	script, _ := tag.Script()
	if _, ok := rtlScripts[script]; ok {
		return "rtl"
	}
	return "ltr"
}
