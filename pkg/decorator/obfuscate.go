package decorator

import (
	"strings"
	"unicode/utf8"
)

const (
	visibleEnableChance  = 0.25
	visibleBetweenChance = 0.25
	visibleMixedChance   = 0.2
	afterLastFactor      = 0.6
	afterAnyFactor       = 0.25
	afterCoinChance      = 0.5
	mixedFactor          = 0.9
	shortWordRunes       = 2
	shortWordChance      = 0.6
)

// Obfuscate interleaves pool glyphs into word according to mode and density.
// Original runes are never dropped or reordered, so the result is always at
// least as long as word. ModeBetweenWords is a word-boundary signal handled
// by the engine and leaves word unchanged here.
func Obfuscate(src Source, word string, mode Mode, density float64) string {
	if word == "" || mode == ModeBetweenWords {
		return word
	}

	threshold := clamp(density, minThreshold, maxThreshold)
	n := utf8.RuneCountInString(word)

	useVisible := false
	if mode == ModeBetweenChars {
		useVisible = chance(src, visibleEnableChance)
	}

	var b strings.Builder
	b.Grow(len(word) * 3)

	i := 0
	for _, r := range word {
		b.WriteRune(r)
		last := i == n-1
		i++

		p := src.Float64()
		switch mode {
		case ModeBetweenChars:
			if p < threshold {
				b.WriteRune(pick(src, HiddenPool))
			}
			if useVisible && chance(src, visibleBetweenChance) {
				b.WriteRune(pick(src, VisiblePool))
			}
		case ModeAfterChars:
			if (p < afterLastFactor*threshold && last) ||
				(p < afterAnyFactor*threshold && chance(src, afterCoinChance)) {
				b.WriteRune(pick(src, HiddenPool))
			}
		case ModeMixed:
			if p < mixedFactor*threshold {
				b.WriteRune(pick(src, HiddenPool))
			}
			if chance(src, visibleMixedChance) {
				b.WriteRune(pick(src, VisiblePool))
			}
		}
	}

	if n <= shortWordRunes && chance(src, shortWordChance) {
		b.WriteRune(pick(src, HiddenPool))
	}

	// Latin letters and digits get the same treatment as Arabic text.
	return b.String()
}
