package decorator

import "strings"

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the factory used to obtain a random stream for each
// render. The factory is called once per Render/Lines call.
func WithSource(factory func() Source) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newSource = factory
		}
	}
}

// Engine turns plain text into decorated text. It holds no mutable state and
// is safe for concurrent use as long as the source factory hands out
// independent streams, which the default factory does.
type Engine struct {
	newSource func() Source
}

// New returns an Engine backed by freshly seeded math/rand/v2 streams.
func New(opts ...Option) *Engine {
	e := &Engine{newSource: NewSource}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render decorates text and returns the lines joined with "\n".
// Blank text always renders to "" whatever the configuration.
func (e *Engine) Render(text string, cfg Config) (string, error) {
	lines, err := e.Lines(text, cfg)
	if err != nil {
		return "", err
	}
	return joinLines(lines), nil
}

// Lines is Render without the final newline join.
func (e *Engine) Lines(text string, cfg Config) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalize()

	groups, err := Chunk(text, cfg.WordsPerLine)
	if err != nil {
		return nil, err
	}

	src := e.newSource()
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		if cfg.UseBrackets {
			g = Mark(src, g)
		}
		if cfg.Protect {
			g = protect(src, g, cfg)
		}
		lines = append(lines, g.Join(cfg.Separator))
	}
	return lines, nil
}

// protect obfuscates every word of g and runs the decoration pass.
func protect(src Source, g Group, cfg Config) Group {
	out := make(Group, len(g))
	for i, w := range g {
		p := SelectPattern(src).Scale(cfg.ProtectIntensity)
		w = Obfuscate(src, w, p.Mode, p.Density)

		if p.Mode == ModeBetweenWords && chance(src, clamp(p.Density, minThreshold, maxThreshold)) {
			w += string(pick(src, HiddenPool))
		}
		if chance(src, cfg.DecorIntensity) {
			w += string(pick(src, HiddenPool)) + string(pick(src, VisiblePool))
		}
		out[i] = w
	}
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
