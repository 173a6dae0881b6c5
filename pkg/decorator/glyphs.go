package decorator

// HiddenPool holds zero-width and formatting code points. They render as
// nothing in Arabic text but break naive copy, search and scraping.
var HiddenPool = []rune{
	'\u200B', // ZERO WIDTH SPACE
	'\u200C', // ZERO WIDTH NON-JOINER
	'\u200D', // ZERO WIDTH JOINER
	'\u2060', // WORD JOINER
	'\uFEFF', // ZERO WIDTH NO-BREAK SPACE
	'\u200F', // RIGHT-TO-LEFT MARK
	'\u061C', // ARABIC LETTER MARK
	'\u034F', // COMBINING GRAPHEME JOINER
	'\u2062', // INVISIBLE TIMES
	'\u2063', // INVISIBLE SEPARATOR
}

// VisiblePool holds lightweight Arabic diacritics used as decoration.
var VisiblePool = []rune{
	'\u064E', // FATHA
	'\u064F', // DAMMA
	'\u0650', // KASRA
	'\u0651', // SHADDA
	'\u0652', // SUKUN
	'\u0670', // SUPERSCRIPT ALEF
}

var (
	hiddenSet  = toSet(HiddenPool)
	visibleSet = toSet(VisiblePool)
)

func toSet(pool []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(pool))
	for _, r := range pool {
		set[r] = struct{}{}
	}
	return set
}

// IsHidden reports whether r belongs to the hidden pool.
func IsHidden(r rune) bool {
	_, ok := hiddenSet[r]
	return ok
}

// IsVisible reports whether r belongs to the visible-decorative pool.
func IsVisible(r rune) bool {
	_, ok := visibleSet[r]
	return ok
}

// IsGlyph reports whether r belongs to either pool.
func IsGlyph(r rune) bool {
	return IsHidden(r) || IsVisible(r)
}
