package osc

import "github.com/cwbudde/algo-synth/dsp/core"

// Mix holds per-shape levels for rendering several waveforms from one
// phase. Levels are clamped to [0, 1]; NaN counts as 0.
type Mix struct {
	Sine     float64
	Triangle float64
	Saw      float64
	Square   float64
}

// Empty reports whether every clamped level is zero.
func (m Mix) Empty() bool {
	return m.total() == 0
}

func (m Mix) levels() [4]float64 {
	return [4]float64{
		ShapeSine:     core.Clamp01(m.Sine),
		ShapeTriangle: core.Clamp01(m.Triangle),
		ShapeSaw:      core.Clamp01(m.Saw),
		ShapeSquare:   core.Clamp01(m.Square),
	}
}

func (m Mix) total() float64 {
	var sum float64
	for _, l := range m.levels() {
		sum += l
	}

	return sum
}

// NextMix advances the phase like Next and returns the level-weighted sum
// of every shape at the new phase. The sum is divided by the total level
// when that exceeds 1, so the output stays in [-1, 1].
func (o *Oscillator) NextMix(freqHz, dt, width float64, m Mix) float64 {
	freq := core.ClampFrequency(freqHz)
	p := o.phase.Advance(freq, dt)

	if aboveNyquist(freq, dt) {
		return 0
	}

	levels := m.levels()

	var sum, total float64
	for shape, l := range levels {
		if l == 0 {
			continue
		}

		sum += l * o.gen.Generate(Shape(shape), p, width)
		total += l
	}

	if total > 1 {
		sum /= total
	}

	return sum
}
