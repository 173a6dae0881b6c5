package decorator_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zakhrafa/pkg/decorator"
)

func TestObfuscate_Identity(t *testing.T) {
	t.Parallel()

	t.Run("empty word", func(t *testing.T) {
		t.Parallel()
		for _, m := range decorator.Modes {
			assert.Equal(t, "", decorator.Obfuscate(constSource(0), "", m, 0.5))
		}
	})

	t.Run("between-words leaves the word alone", func(t *testing.T) {
		t.Parallel()
		draws := 0
		src := decorator.SourceFunc(func() float64 { draws++; return 0 })
		assert.Equal(t, "لله", decorator.Obfuscate(src, "لله", decorator.ModeBetweenWords, 0.8))
		assert.Zero(t, draws)
	})

	t.Run("high draws insert nothing", func(t *testing.T) {
		t.Parallel()
		for _, m := range decorator.Modes {
			for _, w := range []string{"رب", "العالمين", "abc123"} {
				assert.Equal(t, w, decorator.Obfuscate(constSource(0.99), w, m, 0.8), "mode %s", m)
			}
		}
	})
}

func TestObfuscate_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     decorator.Source
		word    string
		mode    decorator.Mode
		density float64
		want    string
	}{
		{
			name:    "between-chars with visible glyphs enabled",
			src:     constSource(0),
			word:    "رب",
			mode:    decorator.ModeBetweenChars,
			density: 0.5,
			want:    "ر\u200B\u064Eب\u200B\u064E\u200B",
		},
		{
			name:    "after-chars inserts on coin and on last rune",
			src:     constSource(0),
			word:    "رب",
			mode:    decorator.ModeAfterChars,
			density: 0.5,
			want:    "ر\u200Bب\u200B\u200B",
		},
		{
			name:    "mixed inserts hidden and visible",
			src:     constSource(0),
			word:    "رب",
			mode:    decorator.ModeMixed,
			density: 0.5,
			want:    "ر\u200B\u064Eب\u200B\u064E\u200B",
		},
		{
			// p=0.2 misses both clauses, p=0.1 passes the 0.25 threshold but
			// loses the coin (0.7), p=0.2 on the last rune passes 0.6*threshold.
			name:    "after-chars last rune clause",
			src:     seqSource(0.2, 0.1, 0.7, 0.2, 0),
			word:    "abc",
			mode:    decorator.ModeAfterChars,
			density: 0.5,
			want:    "abc\u200B",
		},
		{
			name:    "density above range is clamped to 0.9",
			src:     constSource(0.89),
			word:    "abc",
			mode:    decorator.ModeBetweenChars,
			density: 5,
			want:    "a\u2062b\u2062c\u2062",
		},
		{
			name:    "density below range is clamped to 0.05",
			src:     constSource(0.06),
			word:    "abc",
			mode:    decorator.ModeBetweenChars,
			density: -1,
			want:    "abc",
		},
		{
			name:    "short word bonus glyph",
			src:     seqSource(0.9, 0.9, 0.9, 0.5, 0.1),
			word:    "في",
			mode:    decorator.ModeBetweenChars,
			density: 0.3,
			want:    "في\u200C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decorator.Obfuscate(tt.src, tt.word, tt.mode, tt.density))
		})
	}
}

func TestObfuscate_OnlyInserts(t *testing.T) {
	t.Parallel()

	words := []string{"الحمد", "لله", "رب", "العالمين", "و", "abc", "R2D2", "مرحبا123"}
	src := seeded(2024)

	for range 300 {
		for _, w := range words {
			for _, m := range decorator.Modes {
				density := src.Float64()
				got := decorator.Obfuscate(src, w, m, density)

				assert.Equal(t, w, decorator.Strip(got), "mode %s density %.2f", m, density)
				assert.GreaterOrEqual(t, len(got), len(w))
				assert.GreaterOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(w))
			}
		}
	}
}
