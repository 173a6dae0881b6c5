package decorator

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var glyphSet = runes.Predicate(IsGlyph)

// Strip removes every hidden and visible pool glyph from s. Diacritics that
// were already present in the source text and happen to be in the visible
// pool are removed too, so recovery is best effort.
func Strip(s string) string {
	out, _, err := transform.String(runes.Remove(glyphSet), s)
	if err != nil {
		return s
	}
	return out
}

// StripHidden removes only the hidden pool, keeping visible diacritics.
func StripHidden(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(IsHidden)), s)
	if err != nil {
		return s
	}
	return out
}
