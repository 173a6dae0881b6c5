package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString rejects empty and whitespace-only values.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: fieldError(field, "field is required", "validation.required", nil),
	}
}

// MaxLenString limits the byte length of value.
func MaxLenString(field, value string, hi int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= hi },
		Error: fieldError(field, fmt.Sprintf("must be at most %d bytes long", hi), "validation.max_length",
			map[string]any{"max": hi}),
	}
}

// MaxRunesString limits the number of characters in value. Arabic letters
// take two bytes each, so text limits are counted in runes.
func MaxRunesString(field, value string, hi int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= hi },
		Error: fieldError(field, fmt.Sprintf("must be at most %d characters long", hi), "validation.max_runes",
			map[string]any{"max": hi}),
	}
}

// ValidUTF8 rejects malformed byte sequences.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool { return utf8.ValidString(value) },
		Error: fieldError(field, "must be valid UTF-8 text", "validation.utf8", nil),
	}
}
