package i18n

import (
	"net/http"
	"strings"
	"time"
)

const (
	// ParamName is both the query parameter and the cookie name.
	ParamName = "lang"

	maxAcceptLanguageLength = 4096
	cookieMaxAge            = 365 * 24 * time.Hour
)

// Middleware resolves the request language and stores it with SetLocale.
// An explicit ?lang= choice is remembered in a cookie.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := Resolve(t, r)
			if q := strings.TrimSpace(r.URL.Query().Get(ParamName)); q != "" && exact(t, q) == lang {
				http.SetCookie(w, &http.Cookie{
					Name:     ParamName,
					Value:    lang,
					Path:     "/",
					MaxAge:   int(cookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Resolve picks the language for r without touching the response.
func Resolve(t *Translator, r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get(ParamName)); q != "" {
		if lang := exact(t, q); lang != "" {
			return lang
		}
	}
	if c, err := r.Cookie(ParamName); err == nil {
		if lang := exact(t, strings.TrimSpace(c.Value)); lang != "" {
			return lang
		}
	}
	header := r.Header.Get("Accept-Language")
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	if header == "" {
		return t.DefaultLanguage()
	}
	return t.Match(header)
}

// exact accepts a loaded language or its regional variant ("en-US" → "en").
func exact(t *Translator, v string) string {
	v = strings.ToLower(v)
	if t.Supports(v) {
		return v
	}
	if i := strings.IndexByte(v, '-'); i > 0 && t.Supports(v[:i]) {
		return v[:i]
	}
	return ""
}
