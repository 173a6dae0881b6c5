package decorator

import "strings"

const (
	bracketOpen  = "[ "
	bracketClose = " ]"
)

// Mark wraps one uniformly chosen word of g in bracket markers and returns
// the result as a new group. g itself is left untouched. An empty group is
// returned as is without consuming a draw.
func Mark(src Source, g Group) Group {
	if len(g) == 0 {
		return g
	}
	out := make(Group, len(g))
	copy(out, g)
	i := intn(src, len(out))
	out[i] = bracketOpen + out[i] + bracketClose
	return out
}

// IsMarked reports whether w carries the markers added by Mark.
func IsMarked(w string) bool {
	return len(w) >= len(bracketOpen)+len(bracketClose) &&
		strings.HasPrefix(w, bracketOpen) &&
		strings.HasSuffix(w, bracketClose)
}

// Unmark removes bracket markers added by Mark from every word of s.
func Unmark(s string) string {
	s = strings.ReplaceAll(s, bracketOpen, "")
	return strings.ReplaceAll(s, bracketClose, "")
}
