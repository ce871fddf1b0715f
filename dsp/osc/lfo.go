package osc

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	// LFOVolts is the peak output of an LFO at full level.
	LFOVolts = 5.0

	// MaxLFOFrequencyHz bounds the rate after pitch modulation.
	MaxLFOFrequencyHz = 1000.0

	maxLFOPitchVolts = 12.0
)

// LFO is a low-frequency modulation source: a Phase rendered through a
// Shape, scaled by a level and emitted as a ±LFOVolts control voltage.
// Unlike Oscillator its rate is not clamped to the audio range, so it can
// run arbitrarily slow or stop at 0 Hz.
type LFO struct {
	phase Phase
	shape Shape
	gen   Generator
}

// NewLFO creates an LFO. A nil gen selects AnalyticGenerator.
func NewLFO(shape Shape, gen Generator) (*LFO, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("osc: invalid lfo shape: %d", shape)
	}

	if gen == nil {
		gen = AnalyticGenerator{}
	}

	return &LFO{shape: shape, gen: gen}, nil
}

// Rate returns rateHz scaled by 2^pitchVolts and clamped to
// [0, MaxLFOFrequencyHz]. Non-finite inputs are treated as 0.
func Rate(rateHz, pitchVolts float64) float64 {
	if !core.IsFinite(pitchVolts) {
		pitchVolts = 0
	}

	v := core.Clamp(pitchVolts, -maxLFOPitchVolts, maxLFOPitchVolts)

	return core.Clamp(core.Sanitize(rateHz)*core.Exp2(v), 0, MaxLFOFrequencyHz)
}

// Process advances the LFO by one step of dt seconds and returns its
// output in volts. level is clamped to [0, 1].
func (l *LFO) Process(rateHz, pitchVolts, level, dt float64) float64 {
	p := l.phase.Advance(Rate(rateHz, pitchVolts), dt)

	return LFOVolts * core.Clamp01(level) * l.gen.Generate(l.shape, p, 0.5)
}

// Shape returns the LFO waveform.
func (l *LFO) Shape() Shape { return l.shape }

// SetShape selects a waveform. Invalid shapes are ignored.
func (l *LFO) SetShape(shape Shape) {
	if shape.Valid() {
		l.shape = shape
	}
}

// Phase returns the current phase.
func (l *LFO) Phase() float64 { return l.phase.Value() }

// Reset returns the phase to 0, e.g. to retrigger on a new note.
func (l *LFO) Reset() { l.phase.Reset() }
