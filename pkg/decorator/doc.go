// Package decorator implements the article decoration engine: it regroups
// free text into fixed-width lines joined by a separator, optionally wraps
// one random word per line in bracket markers, and optionally interleaves
// invisible or near-invisible glyphs into every word to add friction for
// copy, scraping and cleanup tools.
//
// # Pipeline
//
// Render runs the stages in order:
//
//  1. Chunk splits the text on Unicode whitespace into groups of
//     Config.WordsPerLine words.
//  2. Mark brackets one random word per group when Config.UseBrackets is set.
//  3. When Config.Protect is set every word gets a Pattern from
//     SelectPattern, scaled by Config.ProtectIntensity, and goes through
//     Obfuscate. A decoration pass then appends a hidden and a visible glyph
//     to each word with probability Config.DecorIntensity.
//  4. Words are joined with Config.Separator and lines with "\n".
//
// Plain rendering (Protect and UseBrackets both off) draws no random values
// and is a pure function of text, WordsPerLine and Separator.
//
// # Randomness
//
// All draws come from a Source. Engine asks its factory for a fresh Source
// on every render so concurrent renders never share a stream. Tests pass a
// scripted Source through WithSource to pin individual draws.
//
// # Recovery
//
// Decoration only inserts runes. Strip removes every pool glyph and Unmark
// removes bracket markers, which recovers the input words as long as the
// input did not already contain pool code points.
//
// # Usage
//
//	engine := decorator.New()
//	out, err := engine.Render(article, decorator.Config{
//		WordsPerLine: 3,
//		Separator:    " . ",
//		UseBrackets:  true,
//	})
//
// Memo wraps an Engine with a bounded cache keyed by text and Config, so the
// same nonce always reproduces the same decoration.
package decorator
