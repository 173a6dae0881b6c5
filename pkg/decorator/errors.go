package decorator

import "errors"

// ErrInvalidWordsPerLine is returned when the line width is below one word.
var ErrInvalidWordsPerLine = errors.New("words per line must be at least 1")
