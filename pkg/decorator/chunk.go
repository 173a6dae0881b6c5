package decorator

import "strings"

// Group is one output line worth of words, in input order.
type Group []string

// Join concatenates the group's words with sep.
func (g Group) Join(sep string) string {
	return strings.Join(g, sep)
}

// Chunk splits text on runs of Unicode whitespace and partitions the words
// into consecutive groups of wordsPerLine. The last group holds whatever is
// left over. Blank text yields no groups and no error.
func Chunk(text string, wordsPerLine int) ([]Group, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}
	if wordsPerLine < 1 {
		return nil, ErrInvalidWordsPerLine
	}

	groups := make([]Group, 0, (len(words)-1)/wordsPerLine+1)
	for start := 0; start < len(words); start += wordsPerLine {
		end := min(start+wordsPerLine, len(words))
		groups = append(groups, Group(words[start:end:end]))
	}
	return groups, nil
}
