package core

import "math"

const (
	defaultEpsilon = 1e-12

	// MinDivisor is the smallest positive value accepted as a time or rate
	// divisor on the per-sample path.
	MinDivisor = 1e-9
)

// Clamp limits value to the inclusive range [min, max].
// NaN collapses to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp01 limits value to [0, 1].
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SafeDivisor returns v when it is a usable positive divisor and MinDivisor
// otherwise (zero, negative, NaN). +Inf is passed through.
func SafeDivisor(v float64) float64 {
	if v > MinDivisor {
		return v
	}

	return MinDivisor
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Filter and envelope memories decay toward zero and would otherwise
// spend a long time in the denormal range.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// Sanitize replaces non-finite values with 0.
func Sanitize(x float64) float64 {
	if !IsFinite(x) {
		return 0
	}

	return x
}
