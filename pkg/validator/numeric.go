package validator

import (
	"fmt"
	"math"
)

// MinNum requires value >= lo.
func MinNum[T Numeric](field string, value, lo T) Rule {
	return Rule{
		Check: func() bool { return value >= lo },
		Error: fieldError(field, fmt.Sprintf("must be at least %v", lo), "validation.min", map[string]any{"min": lo}),
	}
}

// MaxNum requires value <= hi.
func MaxNum[T Numeric](field string, value, hi T) Rule {
	return Rule{
		Check: func() bool { return value <= hi },
		Error: fieldError(field, fmt.Sprintf("must be at most %v", hi), "validation.max", map[string]any{"max": hi}),
	}
}

// RangeNum requires lo <= value <= hi. NaN never passes.
func RangeNum[T Numeric](field string, value, lo, hi T) Rule {
	return Rule{
		Check: func() bool {
			if math.IsNaN(float64(value)) {
				return false
			}
			return value >= lo && value <= hi
		},
		Error: fieldError(field, fmt.Sprintf("must be between %v and %v", lo, hi), "validation.range",
			map[string]any{"min": lo, "max": hi}),
	}
}
