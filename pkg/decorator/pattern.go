package decorator

import "fmt"

// Mode selects where glyphs go inside a word.
type Mode int

const (
	ModeBetweenChars Mode = iota
	ModeAfterChars
	ModeBetweenWords
	ModeMixed
)

var modeNames = [...]string{
	ModeBetweenChars: "between-chars",
	ModeAfterChars:   "after-chars",
	ModeBetweenWords: "between-words",
	ModeMixed:        "mixed",
}

// Modes lists every insertion mode in draw order.
var Modes = []Mode{ModeBetweenChars, ModeAfterChars, ModeBetweenWords, ModeMixed}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

const (
	minDensity   = 0.2
	densitySpan  = 0.6
	maxAdjusted  = 0.95
	minThreshold = 0.05
	maxThreshold = 0.9
)

// Pattern is the per-word insertion plan.
type Pattern struct {
	Mode    Mode
	Density float64
}

// SelectPattern draws a mode uniformly and a density uniformly from
// [0.2, 0.8).
func SelectPattern(src Source) Pattern {
	return Pattern{
		Mode:    Modes[intn(src, len(Modes))],
		Density: minDensity + src.Float64()*densitySpan,
	}
}

// Scale applies the protect intensity to the drawn density, capped at 0.95.
func (p Pattern) Scale(intensity float64) Pattern {
	p.Density = min(maxAdjusted, p.Density*(0.5+intensity))
	return p
}
