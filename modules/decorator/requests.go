package decorator

import (
	deco "github.com/dmitrymomot/zakhrafa/pkg/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/sanitizer"
	"github.com/dmitrymomot/zakhrafa/pkg/validator"
)

// DecorateRequest is shared by the DataStar signals, the form post and the
// JSON API, so the field names match across all three.
type DecorateRequest struct {
	Text             string  `json:"text" form:"text"`
	WordsPerLine     int     `json:"words_per_line" form:"words_per_line"`
	Separator        string  `json:"separator" form:"separator"`
	UseBrackets      bool    `json:"use_brackets" form:"use_brackets"`
	Protect          bool    `json:"protect" form:"protect"`
	ProtectIntensity float64 `json:"protect_intensity" form:"protect_intensity"`
	DecorIntensity   float64 `json:"decor_intensity" form:"decor_intensity"`
	Nonce            int     `json:"nonce" form:"nonce"`
}

func newDecorateRequest(d Defaults) DecorateRequest {
	return DecorateRequest{
		WordsPerLine:     d.WordsPerLine,
		Separator:        d.Separator,
		UseBrackets:      d.UseBrackets,
		Protect:          d.Protect,
		ProtectIntensity: d.ProtectIntensity,
		DecorIntensity:   d.DecorIntensity,
	}
}

var (
	cleanText      = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.RemoveControlChars)
	cleanSeparator = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
)

// Sanitize drops control characters from pasted text and keeps the
// separator on one line.
func (r DecorateRequest) Sanitize() DecorateRequest {
	r.Text = cleanText(r.Text)
	r.Separator = cleanSeparator(r.Separator)
	return r
}

// Validate checks the request against the module limits. Blank text is
// allowed and renders to nothing.
func (r DecorateRequest) Validate(cfg Config) error {
	return validator.Apply(
		validator.ValidUTF8("text", r.Text),
		validator.MaxRunesString("text", r.Text, cfg.MaxTextLength),
		validator.RangeNum("words_per_line", r.WordsPerLine, 1, cfg.MaxWordsPerLine),
		validator.MaxRunesString("separator", r.Separator, cfg.MaxSeparatorLength),
		validator.RangeNum("protect_intensity", r.ProtectIntensity, 0, 1),
		validator.RangeNum("decor_intensity", r.DecorIntensity, 0, deco.MaxDecorIntensity),
		validator.MinNum("nonce", r.Nonce, 0),
	)
}

// Engine returns the engine configuration for the request.
func (r DecorateRequest) Engine() deco.Config {
	return deco.Config{
		WordsPerLine:     r.WordsPerLine,
		Separator:        r.Separator,
		UseBrackets:      r.UseBrackets,
		Protect:          r.Protect,
		ProtectIntensity: r.ProtectIntensity,
		DecorIntensity:   r.DecorIntensity,
		Nonce:            r.Nonce,
	}
}

// StripRequest asks for the glyph-free form of a decorated text.
// KeepDiacritics removes only the invisible marks.
type StripRequest struct {
	Text           string `json:"text"`
	Unmark         bool   `json:"unmark"`
	KeepDiacritics bool   `json:"keep_diacritics"`
}

func (r StripRequest) Validate(cfg Config) error {
	// Decorated text is longer than its source; allow for the inserted glyphs.
	return validator.Apply(
		validator.RequiredString("text", r.Text),
		validator.ValidUTF8("text", r.Text),
		validator.MaxRunesString("text", r.Text, 4*cfg.MaxTextLength),
	)
}

// Result is the payload of a successful decoration.
type Result struct {
	Output string   `json:"output"`
	Lines  []string `json:"lines"`
}
