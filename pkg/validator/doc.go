// Package validator builds request validation out of small rules.
//
// A Rule pairs a check with the error reported when the check fails. Apply
// runs every rule and collects the failures into ValidationErrors, so a
// caller gets all field problems at once:
//
//	err := validator.Apply(
//		validator.RequiredString("text", req.Text),
//		validator.MaxRunesString("text", req.Text, 20000),
//		validator.RangeNum("words_per_line", req.WordsPerLine, 1, 100),
//	)
//
// Each error carries a TranslationKey and TranslationValues so the HTTP
// layer can render it in the user's language.
package validator
