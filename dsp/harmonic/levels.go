package harmonic

import "github.com/cwbudde/algo-synth/dsp/core"

// Levels carries the per-slot amplitude sources for one sample.
// When CVConnected[i] is set, CV[i] (volts) governs slot i and Manual[i]
// is ignored.
type Levels struct {
	Manual      [NumSlots]float64
	CV          [NumSlots]float64
	CVConnected [NumSlots]bool
}

// ManualLevels returns Levels with the given manual values for the first
// len(values) slots and no CV connected.
func ManualLevels(values ...float64) Levels {
	var l Levels
	for i := 0; i < len(values) && i < NumSlots; i++ {
		l.Manual[i] = values[i]
	}

	return l
}

// Amplitude resolves the amplitude of slot i in [0, 1].
func (l *Levels) Amplitude(i int) float64 {
	if l.CVConnected[i] {
		return core.Clamp01(l.CV[i] * 0.1)
	}

	return core.Clamp01(l.Manual[i])
}

// Connect routes v volts into slot i.
func (l *Levels) Connect(i int, volts float64) {
	l.CV[i] = volts
	l.CVConnected[i] = true
}

// Disconnect returns slot i to its manual level.
func (l *Levels) Disconnect(i int) {
	l.CV[i] = 0
	l.CVConnected[i] = false
}
