//go:build fastmath

package core

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// exp2 splits x into integer and fractional octaves. Only the fraction goes
// through the approximation; the integer part is an exact exponent shift.
func exp2(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	n := math.Floor(x)
	if n > 1023 {
		return math.Inf(1)
	}
	if n < -1074 {
		return 0
	}

	return math.Ldexp(approx.FastExp((x-n)*math.Ln2), int(n))
}
