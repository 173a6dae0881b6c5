package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zakhrafa/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", sanitizer.Apply("  a\r\nb\x00 ", sanitizer.Trim, sanitizer.RemoveControlChars, sanitizer.SingleLine))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "",
		"a\nb":        "a\nb",
		"a\r\nb\r\nc": "a\nb\nc",
		"a\rb":        "a\nb",
		"a\r\r\nb":    "a\n\nb",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.NormalizeNewlines(in), "%q", in)
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "مرحبا\tبكم\nهنا", sanitizer.RemoveControlChars("مرحبا\x00\tبكم\n\x1bهنا\u0085"))
	assert.Equal(t, "a\u200bb", sanitizer.RemoveControlChars("a\u200bb"), "format characters stay")
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " . ", sanitizer.SingleLine(" . "))
	assert.Equal(t, "a b c", sanitizer.SingleLine("a\r\nb\n\n\nc"))
}
