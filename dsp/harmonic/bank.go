package harmonic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

// NumSlots is the number of partials in a Bank.
const NumSlots = 8

const (
	defaultOutputGain = 5.0
	maxOutputGain     = 10.0
)

// Mode selects how slot frequencies are derived.
type Mode int

const (
	// ModeRatio runs slot i at baseHz*(i+1).
	ModeRatio Mode = iota
	// ModeFixed reads slot frequencies from the table chosen by Spacing.
	ModeFixed
)

func (m Mode) String() string {
	switch m {
	case ModeRatio:
		return "ratio"
	case ModeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Slot is one partial of the bank.
type Slot struct {
	phase osc.Phase
	freq  float64
	amp   float64
}

// Phase returns the slot phase after the last Process call.
func (s *Slot) Phase() float64 { return s.phase.Value() }

// Frequency returns the frequency used on the last Process call.
func (s *Slot) Frequency() float64 { return s.freq }

// Amplitude returns the amplitude used on the last Process call.
func (s *Slot) Amplitude() float64 { return s.amp }

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	mode       Mode
	spacing    Spacing
	shape      osc.Shape
	gen        osc.Generator
	outputGain float64
}

func defaultConfig() config {
	return config{
		mode:       ModeRatio,
		spacing:    SpacingStandard,
		shape:      osc.ShapeSine,
		outputGain: defaultOutputGain,
	}
}

// WithMode selects ratio or fixed-table frequencies.
func WithMode(mode Mode) Option {
	return func(cfg *config) error {
		if mode != ModeRatio && mode != ModeFixed {
			return fmt.Errorf("harmonic: invalid mode: %d", mode)
		}

		cfg.mode = mode

		return nil
	}
}

// WithSpacing selects the fixed table used in ModeFixed.
func WithSpacing(spacing Spacing) Option {
	return func(cfg *config) error {
		if !validSpacing(spacing) {
			return fmt.Errorf("harmonic: invalid spacing: %d", spacing)
		}

		cfg.spacing = spacing

		return nil
	}
}

// WithShape selects the waveform every slot renders. Default is sine.
func WithShape(shape osc.Shape) Option {
	return func(cfg *config) error {
		if !shape.Valid() {
			return fmt.Errorf("harmonic: invalid shape: %d", shape)
		}

		cfg.shape = shape

		return nil
	}
}

// WithGenerator selects the waveform strategy. Default is a TableGenerator
// over the shared sine table.
func WithGenerator(gen osc.Generator) Option {
	return func(cfg *config) error {
		if gen == nil {
			return fmt.Errorf("harmonic: generator must not be nil")
		}

		cfg.gen = gen

		return nil
	}
}

// WithOutputGain sets the full-scale output in volts, in (0, 10].
func WithOutputGain(gain float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(gain) || gain <= 0 || gain > maxOutputGain {
			return fmt.Errorf("harmonic: output gain must be in (0, %g]: %f", maxOutputGain, gain)
		}

		cfg.outputGain = gain

		return nil
	}
}

// Bank sums NumSlots independently phased, amplitude-controlled partials.
type Bank struct {
	slots      [NumSlots]Slot
	mode       Mode
	spacing    Spacing
	shape      osc.Shape
	gen        osc.Generator
	outputGain float64
}

// New constructs a Bank.
func New(opts ...Option) (*Bank, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.gen == nil {
		cfg.gen = osc.NewTableGenerator(nil)
	}

	return &Bank{
		mode:       cfg.mode,
		spacing:    cfg.spacing,
		shape:      cfg.shape,
		gen:        cfg.gen,
		outputGain: cfg.outputGain,
	}, nil
}

// Process advances every slot by one sample and returns
// outputGain * sum(amp_i * wave(phase_i)) / NumSlots.
// baseHz is clamped to the audio-safe range before any slot frequency is
// derived. Slot frequencies above the Nyquist limit of dt are still
// advanced but contribute silence.
func (b *Bank) Process(baseHz, dt float64, levels *Levels) float64 {
	base := core.ClampFrequency(baseHz)
	nyquist := 0.5 / core.SafeDivisor(dt)

	var sum float64
	for i := range b.slots {
		s := &b.slots[i]
		s.freq = b.slotFrequency(i, base)
		p := s.phase.Advance(s.freq, dt)

		s.amp = 0
		if levels != nil {
			s.amp = levels.Amplitude(i)
		}

		if s.amp == 0 || s.freq >= nyquist {
			continue
		}

		sum += s.amp * b.gen.Generate(b.shape, p, 0.5)
	}

	return b.outputGain * sum / NumSlots
}

func (b *Bank) slotFrequency(i int, base float64) float64 {
	if b.mode == ModeFixed {
		return fixedTables[b.spacing][i]
	}

	return math.Min(base*float64(i+1), core.MaxFrequencyHz)
}

// Frequencies returns the slot frequencies for baseHz without advancing
// any phase.
func (b *Bank) Frequencies(baseHz float64) [NumSlots]float64 {
	var out [NumSlots]float64
	base := core.ClampFrequency(baseHz)
	for i := range out {
		out[i] = b.slotFrequency(i, base)
	}

	return out
}

// Slot returns slot i for inspection. It panics if i is out of range.
func (b *Bank) Slot(i int) *Slot { return &b.slots[i] }

// Mode returns the frequency mode.
func (b *Bank) Mode() Mode { return b.mode }

// SetMode selects ratio or fixed-table frequencies.
func (b *Bank) SetMode(mode Mode) error {
	if mode != ModeRatio && mode != ModeFixed {
		return fmt.Errorf("harmonic: invalid mode: %d", mode)
	}

	b.mode = mode

	return nil
}

// Spacing returns the fixed-table selection.
func (b *Bank) Spacing() Spacing { return b.spacing }

// SetSpacing selects the fixed table used in ModeFixed.
func (b *Bank) SetSpacing(spacing Spacing) error {
	if !validSpacing(spacing) {
		return fmt.Errorf("harmonic: invalid spacing: %d", spacing)
	}

	b.spacing = spacing

	return nil
}

// OutputGain returns the full-scale output in volts.
func (b *Bank) OutputGain() float64 { return b.outputGain }

// Reset zeros every slot phase.
func (b *Bank) Reset() {
	for i := range b.slots {
		b.slots[i] = Slot{}
	}
}
