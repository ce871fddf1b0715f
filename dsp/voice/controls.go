package voice

import (
	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	// maxPitchVolts bounds pitch CV before the 1V/oct conversion.
	maxPitchVolts = 12.0

	// GateOnVolts is the level Automation helpers write for a high gate.
	GateOnVolts = 10.0
)

// AmpCV is an optional amplitude control voltage.
type AmpCV struct {
	Volts     float64
	Connected bool
}

// Factor returns clamp(Volts/10, 0, 1) when connected, else 1.
func (a AmpCV) Factor() float64 {
	if !a.Connected {
		return 1
	}

	return core.VoltsToUnit(a.Volts)
}

// pitchHz converts a base frequency and a 1V/oct pitch CV to a clamped
// oscillator frequency.
func pitchHz(baseHz, pitchVolts float64) float64 {
	if !core.IsFinite(pitchVolts) {
		pitchVolts = 0
	}

	v := core.Clamp(pitchVolts, -maxPitchVolts, maxPitchVolts)

	return core.ClampFrequency(core.PitchToFrequency(baseHz, v))
}

// GateVolts returns GateOnVolts while t is in [on, off) and 0 otherwise.
func GateVolts(t, on, off float64) float64 {
	if t >= on && t < off {
		return GateOnVolts
	}

	return 0
}
