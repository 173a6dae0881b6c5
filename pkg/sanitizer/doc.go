// Package sanitizer holds small composable string transforms for cleaning
// pasted text before it reaches the decorator.
//
//	clean := sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.RemoveControlChars)
//	text = clean(text)
package sanitizer
