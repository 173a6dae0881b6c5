package decorator

import "math/rand/v2"

// Source yields uniform values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// NewSource returns a freshly seeded generator. Each call yields an
// independent stream.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// intn maps a uniform draw onto [0, n). n must be positive.
func intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func pick(src Source, pool []rune) rune {
	return pool[intn(src, len(pool))]
}
