package decorator_test

import (
	"math/rand/v2"

	"github.com/dmitrymomot/zakhrafa/pkg/decorator"
)

const fatiha = "الحمد لله رب العالمين"

// constSource returns v on every draw.
func constSource(v float64) decorator.Source {
	return decorator.SourceFunc(func() float64 { return v })
}

// seqSource replays vals in order and then repeats the last one.
func seqSource(vals ...float64) decorator.Source {
	i := 0
	return decorator.SourceFunc(func() float64 {
		v := vals[min(i, len(vals)-1)]
		i++
		return v
	})
}

func seeded(seed uint64) decorator.Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func fixedFactory(src decorator.Source) decorator.Option {
	return decorator.WithSource(func() decorator.Source { return src })
}
