package testutil

import "math"

// DeterministicSine generates amplitude*sin(2*pi*freqHz*(n+offset)/sampleRate).
// offset lets callers line the reference up with accumulators that advance
// before they emit.
func DeterministicSine(freqHz, sampleRate, amplitude float64, offset, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i+offset))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step generates a signal that is 0 before index at and value from at on.
func Step(value float64, at, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i >= at {
			out[i] = value
		}
	}
	return out
}

// GatePattern returns a gate sequence that is high for high samples and
// then low for low samples.
func GatePattern(high, low int) []bool {
	out := make([]bool, high+low)
	for i := 0; i < high; i++ {
		out[i] = true
	}
	return out
}
