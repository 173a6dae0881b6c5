package decorator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zakhrafa/pkg/decorator"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := decorator.DefaultConfig()
	assert.Equal(t, 10, cfg.WordsPerLine)
	assert.Equal(t, " . ", cfg.Separator)
	assert.True(t, cfg.UseBrackets)
	assert.False(t, cfg.Protect)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		protect, decor   float64
		wantProt, wantDe float64
	}{
		{"in range", 0.3, 0.2, 0.3, 0.2},
		{"above range", 3, 0.9, 1, 0.5},
		{"below range", -1, -0.1, 0, 0},
		{"nan", math.NaN(), math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := decorator.Config{WordsPerLine: -3, ProtectIntensity: tt.protect, DecorIntensity: tt.decor}
			got := in.Normalize()
			assert.InDelta(t, tt.wantProt, got.ProtectIntensity, 1e-12)
			assert.InDelta(t, tt.wantDe, got.DecorIntensity, 1e-12)
			assert.Equal(t, -3, got.WordsPerLine)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, decorator.Config{}.Validate(), decorator.ErrInvalidWordsPerLine)
	assert.ErrorIs(t, decorator.Config{WordsPerLine: -1}.Validate(), decorator.ErrInvalidWordsPerLine)
	assert.NoError(t, decorator.Config{WordsPerLine: 1}.Validate())
}
