package decorator

import "math"

// Default values mirror the tool's initial form state.
const (
	DefaultWordsPerLine     = 10
	DefaultSeparator        = " . "
	DefaultProtectIntensity = 0.5
	DefaultDecorIntensity   = 0.1

	// MaxDecorIntensity caps the per-word post-processing probability.
	MaxDecorIntensity = 0.5
)

// Config is the full set of knobs the UI hands to the engine. It is passed
// by value; the engine never mutates the caller's copy.
type Config struct {
	WordsPerLine     int     `json:"words_per_line"`
	Separator        string  `json:"separator"`
	UseBrackets      bool    `json:"use_brackets"`
	Protect          bool    `json:"protect"`
	ProtectIntensity float64 `json:"protect_intensity"`
	DecorIntensity   float64 `json:"decor_intensity"`

	// Nonce is never read by the algorithm. Bumping it forces a fresh set of
	// random draws through Memo without changing anything else.
	Nonce int `json:"nonce"`
}

// DefaultConfig returns the configuration the page starts with.
func DefaultConfig() Config {
	return Config{
		WordsPerLine:     DefaultWordsPerLine,
		Separator:        DefaultSeparator,
		UseBrackets:      true,
		ProtectIntensity: DefaultProtectIntensity,
		DecorIntensity:   DefaultDecorIntensity,
	}
}

// Normalize clamps the intensities into their declared ranges.
// WordsPerLine is left alone; use Validate for it.
func (c Config) Normalize() Config {
	c.ProtectIntensity = clamp(c.ProtectIntensity, 0, 1)
	c.DecorIntensity = clamp(c.DecorIntensity, 0, MaxDecorIntensity)
	return c
}

// Validate checks the preconditions the chunker relies on.
func (c Config) Validate() error {
	if c.WordsPerLine < 1 {
		return ErrInvalidWordsPerLine
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
