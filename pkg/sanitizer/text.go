package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeNewlines turns CRLF and lone CR line endings into LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// RemoveControlChars drops C0/C1 control characters except newline and tab.
// Format characters such as zero-width joiners are not controls and stay.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces every run of line breaks with a single space.
func SingleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prevBreak := false
	for _, r := range s {
		if r == '\n' || r == '\r' {
			if !prevBreak {
				b.WriteByte(' ')
			}
			prevBreak = true
			continue
		}
		prevBreak = false
		b.WriteRune(r)
	}
	return b.String()
}
