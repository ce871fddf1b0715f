package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireInRange fails t if any element lies outside [lo, hi].
func RequireInRange(t *testing.T, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= lo && v <= hi) {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// RequireMonotonic fails t unless data is non-decreasing (dir > 0) or
// non-increasing (dir < 0), allowing eps of numerical slack per step.
func RequireMonotonic(t *testing.T, data []float64, dir int, eps float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		d := data[i] - data[i-1]
		if dir > 0 && d < -eps {
			t.Fatalf("index %d: %v < previous %v", i, data[i], data[i-1])
		}
		if dir < 0 && d > eps {
			t.Fatalf("index %d: %v > previous %v", i, data[i], data[i-1])
		}
	}
}

// SamplesUntil calls next up to limit times and returns the 1-based call
// count at which done first reports true, or -1.
func SamplesUntil(limit int, next func() float64, done func(float64) bool) int {
	for i := 1; i <= limit; i++ {
		if done(next()) {
			return i
		}
	}
	return -1
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
