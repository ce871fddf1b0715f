package osc

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Phase is a normalized position within one waveform cycle.
// The zero value starts at phase 0.
type Phase struct {
	value float64
}

// Advance adds freqHz*dt to the phase and wraps it into [0, 1).
// Increments of a whole cycle or more are reduced with a floor, so the
// phase stays in range even when freqHz exceeds the sample rate.
func (p *Phase) Advance(freqHz, dt float64) float64 {
	v := p.value + freqHz*dt
	switch {
	case v >= 0 && v < 1:
	case v >= 1 && v < 2:
		v--
	case v < 0 && v >= -1:
		v++
	case core.IsFinite(v):
		v -= math.Floor(v)
		if v >= 1 {
			v = 0
		}
	default:
		v = 0
	}

	p.value = v

	return v
}

// Value returns the current phase.
func (p *Phase) Value() float64 { return p.value }

// Set moves the phase to v, wrapped into [0, 1). Non-finite values reset to 0.
func (p *Phase) Set(v float64) {
	if !core.IsFinite(v) {
		p.value = 0
		return
	}

	v -= math.Floor(v)
	if v >= 1 {
		v = 0
	}

	p.value = v
}

// Reset returns the phase to 0.
func (p *Phase) Reset() { p.value = 0 }
