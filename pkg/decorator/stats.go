package decorator

import (
	"regexp"
	"strings"
)

// markedWord matches "[ " + w + " ]" where w is a whitespace-free token, the
// only shape Mark produces.
var markedWord = regexp.MustCompile(`\[ \S+ \]`)

// Stats summarises a decorated string.
type Stats struct {
	Runes   int `json:"runes"`
	Hidden  int `json:"hidden"`
	Visible int `json:"visible"`
	Marked  int `json:"marked"`
	Lines   int `json:"lines"`
}

// Inspect counts glyphs, marked words and lines in s. Marked words are
// detected after stripping glyphs so protected output is counted too; stray
// brackets in the source text do not count.
func Inspect(s string) Stats {
	var st Stats
	if s == "" {
		return st
	}
	for _, r := range s {
		st.Runes++
		switch {
		case IsHidden(r):
			st.Hidden++
		case IsVisible(r):
			st.Visible++
		}
	}
	st.Lines = strings.Count(s, "\n") + 1
	for _, w := range markedWord.FindAllString(Strip(s), -1) {
		if IsMarked(w) {
			st.Marked++
		}
	}
	return st
}
