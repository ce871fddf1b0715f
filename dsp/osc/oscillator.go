package osc

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Oscillator binds a Phase to a Shape and a Generator.
type Oscillator struct {
	phase Phase
	shape Shape
	gen   Generator
}

// NewOscillator creates an oscillator. A nil gen selects AnalyticGenerator.
func NewOscillator(shape Shape, gen Generator) (*Oscillator, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("osc: invalid shape: %d", shape)
	}

	if gen == nil {
		gen = AnalyticGenerator{}
	}

	return &Oscillator{shape: shape, gen: gen}, nil
}

// Next advances the phase by freqHz (clamped to the audio-safe range) and
// returns the waveform at the new phase. At or above the Nyquist limit of
// dt the phase still advances but the output is silent.
func (o *Oscillator) Next(freqHz, dt, width float64) float64 {
	freq := core.ClampFrequency(freqHz)
	p := o.phase.Advance(freq, dt)

	if aboveNyquist(freq, dt) {
		return 0
	}

	return o.gen.Generate(o.shape, p, width)
}

func aboveNyquist(freqHz, dt float64) bool {
	return freqHz >= 0.5/core.SafeDivisor(dt)
}

// Shape returns the selected waveform.
func (o *Oscillator) Shape() Shape { return o.shape }

// SetShape selects a waveform. Invalid shapes are ignored.
func (o *Oscillator) SetShape(shape Shape) {
	if shape.Valid() {
		o.shape = shape
	}
}

// Phase returns the current phase.
func (o *Oscillator) Phase() float64 { return o.phase.Value() }

// SetPhase moves the phase, e.g. for hard sync.
func (o *Oscillator) SetPhase(v float64) { o.phase.Set(v) }

// Reset returns the phase to 0.
func (o *Oscillator) Reset() { o.phase.Reset() }
