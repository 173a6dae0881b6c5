package decorator

import "github.com/dmitrymomot/zakhrafa/pkg/cache"

// DefaultMemoSize is used when NewMemo is given a non-positive capacity.
const DefaultMemoSize = 256

type memoKey struct {
	text string
	cfg  Config
}

// Memo caches rendered lines per (text, Config) pair. Because Config carries
// the nonce, a page re-requesting the same state gets the same decoration
// back and only a nonce bump re-rolls it. Least recently used entries are
// evicted once capacity is reached.
type Memo struct {
	engine *Engine
	lru    *cache.LRU[memoKey, []string]
}

// NewMemo wraps engine with a bounded render cache.
func NewMemo(engine *Engine, capacity int) *Memo {
	if engine == nil {
		engine = New()
	}
	if capacity <= 0 {
		capacity = DefaultMemoSize
	}
	return &Memo{
		engine: engine,
		lru:    cache.NewLRU[memoKey, []string](capacity),
	}
}

// Render is the memoized Engine.Render.
func (m *Memo) Render(text string, cfg Config) (string, error) {
	lines, err := m.Lines(text, cfg)
	if err != nil {
		return "", err
	}
	return joinLines(lines), nil
}

// Lines is the memoized Engine.Lines. Failed renders are not cached.
// The returned slice is a copy and may be modified by the caller.
func (m *Memo) Lines(text string, cfg Config) ([]string, error) {
	// Keyed on the normalized config: it is what the engine renders with,
	// and it has no NaN fields that would make the key unequal to itself.
	key := memoKey{text: text, cfg: cfg.Normalize()}
	if lines, ok := m.lru.Get(key); ok {
		return clone(lines), nil
	}

	lines, err := m.engine.Lines(text, cfg)
	if err != nil {
		return nil, err
	}
	// A concurrent render of the same key may have landed first; keep it so
	// every caller sees one result.
	stored, _ := m.lru.PutIfAbsent(key, lines)
	return clone(stored), nil
}

// Len returns the number of cached renders.
func (m *Memo) Len() int { return m.lru.Len() }

// Stats returns cache hit and miss counters.
func (m *Memo) Stats() (hits, misses uint64) { return m.lru.Stats() }

func clone(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
