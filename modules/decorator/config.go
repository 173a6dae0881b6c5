package decorator

import (
	deco "github.com/dmitrymomot/zakhrafa/pkg/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/validator"
)

// Config holds the module limits and the form defaults.
type Config struct {
	BasePath           string `env:"DECOR_BASE_PATH" envDefault:""`
	MaxTextLength      int    `env:"DECOR_MAX_TEXT_LENGTH" envDefault:"20000"`
	MaxWordsPerLine    int    `env:"DECOR_MAX_WORDS_PER_LINE" envDefault:"100"`
	MaxSeparatorLength int    `env:"DECOR_MAX_SEPARATOR_LENGTH" envDefault:"16"`
	MemoSize           int    `env:"DECOR_MEMO_SIZE" envDefault:"256"`

	Defaults Defaults
}

// Defaults seeds the form and fills fields an API client leaves out.
type Defaults struct {
	WordsPerLine     int     `env:"DECOR_WORDS_PER_LINE" envDefault:"10"`
	Separator        string  `env:"DECOR_SEPARATOR" envDefault:" . "`
	UseBrackets      bool    `env:"DECOR_BRACKETS" envDefault:"true"`
	Protect          bool    `env:"DECOR_PROTECT" envDefault:"false"`
	ProtectIntensity float64 `env:"DECOR_PROTECT_INTENSITY" envDefault:"0.5"`
	DecorIntensity   float64 `env:"DECOR_DECOR_INTENSITY" envDefault:"0.1"`
}

// DefaultConfig mirrors the env defaults for callers that skip env parsing.
func DefaultConfig() Config {
	d := deco.DefaultConfig()
	return Config{
		MaxTextLength:      20000,
		MaxWordsPerLine:    100,
		MaxSeparatorLength: 16,
		MemoSize:           deco.DefaultMemoSize,
		Defaults: Defaults{
			WordsPerLine:     d.WordsPerLine,
			Separator:        d.Separator,
			UseBrackets:      d.UseBrackets,
			Protect:          d.Protect,
			ProtectIntensity: d.ProtectIntensity,
			DecorIntensity:   d.DecorIntensity,
		},
	}
}

// Engine converts the defaults into an engine configuration.
func (d Defaults) Engine() deco.Config {
	return deco.Config{
		WordsPerLine:     d.WordsPerLine,
		Separator:        d.Separator,
		UseBrackets:      d.UseBrackets,
		Protect:          d.Protect,
		ProtectIntensity: d.ProtectIntensity,
		DecorIntensity:   d.DecorIntensity,
	}
}

// Validate rejects limits and defaults that would make every request fail.
func (c Config) Validate() error {
	return validator.Apply(
		validator.MinNum("max_text_length", c.MaxTextLength, 1),
		validator.MinNum("max_words_per_line", c.MaxWordsPerLine, 1),
		validator.MinNum("max_separator_length", c.MaxSeparatorLength, 0),
		validator.RangeNum("words_per_line", c.Defaults.WordsPerLine, 1, c.MaxWordsPerLine),
		validator.MaxRunesString("separator", c.Defaults.Separator, c.MaxSeparatorLength),
		validator.RangeNum("protect_intensity", c.Defaults.ProtectIntensity, 0, 1),
		validator.RangeNum("decor_intensity", c.Defaults.DecorIntensity, 0, deco.MaxDecorIntensity),
	)
}
